package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestVideoJSON(t *testing.T) {
	t.Run("nil description serializes as null", func(t *testing.T) {
		data, err := json.Marshal(Video{ID: 1, Title: "T", Link: "L", DurationInSec: 100})
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &out))

		assert.Equal(t, float64(1), out["id"])
		assert.Equal(t, "T", out["title"])
		assert.Equal(t, "L", out["link"])
		assert.Equal(t, float64(100), out["durationInSec"])
		assert.Contains(t, out, "description")
		assert.Nil(t, out["description"])
		assert.NotContains(t, out, "annotations")
	})

	t.Run("preloaded annotations are included", func(t *testing.T) {
		notes := "intro"
		data, err := json.Marshal(Video{ID: 1, Annotations: []Annotation{{ID: 2, VideoID: 1, Notes: &notes}}})
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &out))

		annotations := out["annotations"].([]interface{})
		require.Len(t, annotations, 1)
		first := annotations[0].(map[string]interface{})
		assert.Equal(t, float64(1), first["videoId"])
		assert.Equal(t, "intro", first["notes"])
	})
}

func TestAnnotationJSON(t *testing.T) {
	data, err := json.Marshal(Annotation{ID: 3, VideoID: 1, StartTimeInSec: 10, EndTimeInSec: 50, Type: "x"})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, float64(3), out["id"])
	assert.Equal(t, float64(10), out["startTimeInSec"])
	assert.Equal(t, float64(50), out["endTimeInSec"])
	assert.Equal(t, "x", out["type"])
	assert.Nil(t, out["notes"])
}

func TestAutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(All()...))

	assert.True(t, db.Migrator().HasTable("videos"))
	assert.True(t, db.Migrator().HasTable("annotations"))
	assert.True(t, db.Migrator().HasIndex(&Annotation{}, "VideoID"))
}
