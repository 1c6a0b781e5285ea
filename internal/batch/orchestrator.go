package batch

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/rm-hull/noisy-dataset/internal/imaging"
	"github.com/rm-hull/noisy-dataset/internal/imaging/stage"
	"github.com/rm-hull/noisy-dataset/internal/storage"
)

type Renderer interface {
	Render(original, noisy image.Image, label string) (image.Image, error)
}

type Storage interface {
	StoreNoisy(filename string, img image.Image, format storage.Format) (string, error)
	StoreComparison(filename string, img image.Image) (string, error)
}

type Orchestrator struct {
	variance float64
	renderer Renderer
	storage  Storage
	rng      imaging.NormSource
	open     func(filename string) (image.Image, error)
}

func NewOrchestrator(variance float64, renderer Renderer, store Storage, rng imaging.NormSource) *Orchestrator {
	return &Orchestrator{
		variance: variance,
		renderer: renderer,
		storage:  store,
		rng:      rng,
		open:     imgio.Open,
	}
}

// NoisyFilename picks the output name and container: PNG when the source had
// alpha so that it survives, JPEG otherwise.
func NoisyFilename(item Item, hadAlpha bool) (string, storage.Format) {
	format := storage.JPEG
	if hadAlpha {
		format = storage.PNG
	}
	return item.Basename() + "_noisy" + format.Ext(), format
}

func ComparisonFilename(item Item) string {
	return "comparison_" + item.Basename() + storage.PNG.Ext()
}

// Run processes items one at a time in the order given. A failing item is
// logged and recorded in the summary; it never stops the batch.
func (o *Orchestrator) Run(items []Item) Summary {
	startTime := time.Now()
	summary := Summary{
		Total:    len(items),
		Outcomes: make([]Outcome, 0, len(items)),
	}

	for i, item := range items {
		log.Printf("[%02d/%d] processing %s", i+1, len(items), item.Name)
		outcome := o.processItem(item)
		switch {
		case outcome.Status == Success:
			log.Printf("  noisy image: %s, comparison: %s", outcome.NoisyPath, outcome.ComparisonPath)
		case outcome.NoiseSucceeded():
			log.Printf("  noisy image: %s, no comparison: %v", outcome.NoisyPath, outcome.Err)
		default:
			log.Printf("  failed: %v", outcome.Err)
		}
		summary.add(outcome)
	}

	summary.Elapsed = time.Since(startTime)
	return summary
}

func (o *Orchestrator) processItem(item Item) Outcome {
	outcome := Outcome{Item: item}

	var original image.Image
	err := guard(func() (err error) {
		original, err = o.open(item.Path)
		return err
	})
	if err != nil {
		return outcome.fail(DecodeFailed, fmt.Errorf("failed to decode image: %w", err))
	}

	var (
		noisy    image.Image
		hadAlpha bool
	)
	err = guard(func() error {
		c, err := imaging.ToCanonical(original)
		if err != nil {
			return fmt.Errorf("failed to normalise image: %w", err)
		}
		hadAlpha = c.HadAlpha

		if err := c.Pipeline(&stage.GaussianNoiseStage{Variance: o.variance, Rand: o.rng}); err != nil {
			return fmt.Errorf("failed to process image pipeline: %w", err)
		}

		noisy, err = c.Image()
		if err != nil {
			return fmt.Errorf("failed to denormalise image: %w", err)
		}
		return nil
	})
	if err != nil {
		return outcome.fail(TransformFailed, err)
	}

	filename, format := NoisyFilename(item, hadAlpha)
	err = guard(func() (err error) {
		outcome.NoisyPath, err = o.storage.StoreNoisy(filename, noisy, format)
		return err
	})
	if err != nil {
		outcome.NoisyPath = ""
		return outcome.fail(StoreFailed, fmt.Errorf("failed to write %s: %w", filename, err))
	}

	var comparison image.Image
	err = guard(func() (err error) {
		comparison, err = o.renderer.Render(original, noisy, item.Basename())
		return err
	})
	if err != nil {
		return outcome.fail(RenderFailed, fmt.Errorf("failed to render comparison: %w", err))
	}

	comparisonFilename := ComparisonFilename(item)
	err = guard(func() (err error) {
		outcome.ComparisonPath, err = o.storage.StoreComparison(comparisonFilename, comparison)
		return err
	})
	if err != nil {
		outcome.ComparisonPath = ""
		return outcome.fail(RenderFailed, fmt.Errorf("failed to write %s: %w", comparisonFilename, err))
	}

	outcome.Status = Success
	return outcome
}

// guard turns a panic raised by a decoder, renderer or storage sink into an error
// attributed to the current item.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
