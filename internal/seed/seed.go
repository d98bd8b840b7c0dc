// Package seed fills an empty store with fake videos and annotations for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/killallgit/annotator-api/internal/schema"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/videos"
)

// Options controls how much data is generated
type Options struct {
	Videos              int
	AnnotationsPerVideo int
	MinDurationInSec    int
	MaxDurationInSec    int
	Rand                *rand.Rand
}

// Result counts what was created
type Result struct {
	Videos      int
	Annotations int
}

var annotationTypes = []string{"scene", "chapter", "highlight", "speech", "music", "credits"}

// Run creates fake data through the services so every record passes the same checks as API input
func Run(ctx context.Context, videoSvc videos.Service, annotationSvc annotations.Service, opts Options) (Result, error) {
	if opts.MinDurationInSec <= 0 {
		opts.MinDurationInSec = 30
	}
	if opts.MaxDurationInSec < opts.MinDurationInSec {
		opts.MaxDurationInSec = opts.MinDurationInSec + 3600
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	var result Result
	for i := 0; i < opts.Videos; i++ {
		description := faker.Paragraph()
		video, err := videoSvc.CreateVideo(ctx, schema.VideoInput{
			Title:         faker.Sentence(),
			Link:          faker.URL(),
			DurationInSec: opts.MinDurationInSec + rng.Intn(opts.MaxDurationInSec-opts.MinDurationInSec+1),
			Description:   &description,
		})
		if err != nil {
			return result, fmt.Errorf("seeding video %d: %w", i+1, err)
		}
		result.Videos++

		for j := 0; j < opts.AnnotationsPerVideo; j++ {
			start := rng.Intn(video.DurationInSec + 1)
			end := start + rng.Intn(video.DurationInSec-start+1)

			var notes *string
			if rng.Intn(2) == 0 {
				n := faker.Sentence()
				notes = &n
			}

			if _, err := annotationSvc.CreateAnnotation(ctx, video.ID, schema.AnnotationInput{
				StartTimeInSec: start,
				EndTimeInSec:   end,
				Type:           annotationTypes[rng.Intn(len(annotationTypes))],
				Notes:          notes,
			}); err != nil {
				return result, fmt.Errorf("seeding annotation for video %d: %w", video.ID, err)
			}
			result.Annotations++
		}
	}

	return result, nil
}
