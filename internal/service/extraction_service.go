package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-docchat-be/internal/constant"
	"ai-docchat-be/internal/pkg/logger"
	"ai-docchat-be/pkg/extract"

	"github.com/google/uuid"
)

// IExtractionService runs an attachment batch through the format dispatcher.
//
// Contract: given N references it returns exactly N records in input order,
// within the configured batch timeout. Per-file failures become failed
// records; they never abort the batch.
type IExtractionService interface {
	ExtractBatch(ctx context.Context, refs []extract.AttachmentReference) []extract.ExtractedContent
}

type extractionService struct {
	dispatcher   extract.Dispatcher
	publisher    IPublisherService
	logger       logger.ILogger
	batchTimeout time.Duration
	concurrency  int
}

func NewExtractionService(
	dispatcher extract.Dispatcher,
	publisher IPublisherService,
	sysLogger logger.ILogger,
	batchTimeout time.Duration,
	concurrency int,
) IExtractionService {
	if batchTimeout <= 0 {
		batchTimeout = 8 * time.Second
	}
	if concurrency <= 0 {
		concurrency = 3
	}
	return &extractionService{
		dispatcher:   dispatcher,
		publisher:    publisher,
		logger:       sysLogger,
		batchTimeout: batchTimeout,
		concurrency:  concurrency,
	}
}

func (s *extractionService) ExtractBatch(ctx context.Context, refs []extract.AttachmentReference) []extract.ExtractedContent {
	if len(refs) == 0 {
		return []extract.ExtractedContent{}
	}

	started := time.Now()
	batchCtx, cancel := context.WithTimeout(ctx, s.batchTimeout)
	defer cancel()

	// Bounded worker pool. Results are index-addressed so output order always
	// matches input order regardless of completion order.
	results := make([]extract.ExtractedContent, len(refs))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, ref extract.AttachmentReference) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-batchCtx.Done():
				return
			}

			results[idx] = s.extractOne(batchCtx, ref)
		}(i, ref)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timedOut := false
	select {
	case <-done:
		// Workers that never ran because the deadline hit during their wait
		// leave zero records behind; treat that the same as a timeout.
		timedOut = batchCtx.Err() != nil
	case <-batchCtx.Done():
		timedOut = true
	}

	if timedOut {
		// Outer timeout: abandon in-flight work and degrade the whole batch
		// uniformly. No partial text from files still in flight.
		s.logger.Warn("extraction", "Batch timeout exceeded, degrading all files", map[string]interface{}{
			"files":   len(refs),
			"timeout": s.batchTimeout.String(),
		})
		degraded := make([]extract.ExtractedContent, len(refs))
		for i, ref := range refs {
			degraded[i] = extract.Failure(ref, constant.ExtractionFailedGeneric)
		}
		s.publishCompleted(refs, degraded, started)
		return degraded
	}

	s.publishCompleted(refs, results, started)
	return results
}

// extractOne absorbs every per-file failure into a failed record.
func (s *extractionService) extractOne(ctx context.Context, ref extract.AttachmentReference) extract.ExtractedContent {
	extractor, err := s.dispatcher.ExtractorFor(ref.Type)
	if err != nil {
		s.logger.Warn("extraction", "No extractor for declared type", map[string]interface{}{
			"file": ref.Name,
			"type": ref.Type,
		})
		return extract.Failure(ref, err.Error())
	}

	record, err := extractor.Extract(ctx, ref)
	if err != nil {
		s.logger.Warn("extraction", "File extraction failed", map[string]interface{}{
			"file":  ref.Name,
			"error": err.Error(),
		})
		return extract.Failure(ref, err.Error())
	}
	return *record
}

func (s *extractionService) publishCompleted(refs []extract.AttachmentReference, results []extract.ExtractedContent, started time.Time) {
	if s.publisher == nil {
		return
	}

	successful := 0
	for _, r := range results {
		if r.Success && strings.TrimSpace(r.Text) != "" {
			successful++
		}
	}

	if err := s.publisher.PublishExtractionCompleted(uuid.NewString(), len(refs), successful, time.Since(started).Milliseconds()); err != nil {
		s.logger.Warn("extraction", "Failed to publish extraction event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
