package qsim

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

/*
Sampler draws measurement shots from a WaveFunction. Shots are cut into
batches of Config.BatchSize and every batch runs as a pool job with its own
PCG source seeded (Config.Seed, batch index). Tallies are summed once all
batches are in, so the counts depend only on the seed and never on which
worker ran which batch.
*/
type Sampler struct {
	config *Config
}

func NewSampler(config *Config) *Sampler {
	if config == nil {
		config = NewConfig()
	}
	return &Sampler{config: config}
}

func (s *Sampler) Sample(ctx context.Context, wf *WaveFunction, shots int) (Counts, error) {
	if err := ValidateShots(shots); err != nil {
		return nil, err
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if len(wf.States) == 0 {
		return nil, errors.New("cannot sample an empty wave function")
	}

	batches := (shots + s.config.BatchSize - 1) / s.config.BatchSize

	q := NewQ(ctx, min(s.config.Workers, batches), s.config)
	defer q.Close()

	runID := uuid.NewString()
	results := make([]chan QuantumValue, batches)

	for k := 0; k < batches; k++ {
		size := s.config.BatchSize
		if k == batches-1 {
			size = shots - k*s.config.BatchSize
		}

		seed, stream := s.config.Seed, uint64(k)
		results[k] = q.Schedule(fmt.Sprintf("%s/batch-%d", runID, k), func() (any, error) {
			return wf.sample(rand.New(rand.NewPCG(seed, stream)), size), nil
		})
	}

	counts := make(Counts)
	for k, ch := range results {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "sampling cancelled")
		case value, ok := <-ch:
			if !ok {
				return nil, errors.Errorf("batch %d closed without a result", k)
			}
			if value.Error != nil {
				return nil, errors.Wrapf(value.Error, "batch %d", k)
			}
			counts.Merge(value.Value.(Counts))
		}
	}

	log.Printf("Sampler run %s finished: %v", runID, q.Metrics().ExportMetrics())
	errnie.Info("Sampler.Sample - shots %d, batches %d, outcomes %d", shots, batches, len(counts))
	return counts, nil
}
