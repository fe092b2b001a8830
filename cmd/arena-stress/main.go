package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/arena/arena"
)

// stressState churns one arena under random operations while a shadow map
// tracks what every live Id should resolve to. Any disagreement between the
// arena and the shadow map aborts the run.
type stressState struct {
	arena  *arena.Arena[int64]
	shadow *intmap.Map[arena.Id, int64]
	live   []arena.Id
	stale  []arena.Id
	rng    *rand.Rand

	inserts uint64
	removes uint64
	lookups uint64
	scans   uint64
}

func newStressState(seed int64, initial int) *stressState {
	s := &stressState{
		arena:  arena.NewWithCapacity[int64](initial),
		shadow: intmap.New[arena.Id, int64](initial),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < initial; i++ {
		s.insert()
	}
	return s
}

func (s *stressState) insert() {
	v := s.rng.Int63()
	id := s.arena.Insert(v)
	s.shadow.Put(id, v)
	s.live = append(s.live, id)
	s.inserts++
}

func (s *stressState) remove() {
	if len(s.live) == 0 {
		return
	}
	i := s.rng.Intn(len(s.live))
	id := s.live[i]
	s.live[i] = s.live[len(s.live)-1]
	s.live = s.live[:len(s.live)-1]

	want, _ := s.shadow.Get(id)
	got, ok := s.arena.Remove(id)
	if !ok || got != want {
		log.Fatalf("remove %v: got (%d, %v), want (%d, true)", id, got, ok, want)
	}
	s.shadow.Del(id)
	s.stale = append(s.stale, id)
	s.removes++
}

func (s *stressState) lookup() {
	if len(s.live) > 0 {
		id := s.live[s.rng.Intn(len(s.live))]
		want, _ := s.shadow.Get(id)
		v := s.arena.Get(id)
		if v == nil || *v != want {
			log.Fatalf("lookup %v: arena and shadow map disagree", id)
		}
	}
	if len(s.stale) > 0 {
		id := s.stale[s.rng.Intn(len(s.stale))]
		if s.arena.Contains(id) {
			log.Fatalf("stale handle %v resolved after removal", id)
		}
	}
	s.lookups++
}

func (s *stressState) scan() {
	count := 0
	for id, v := range s.arena.All() {
		want, ok := s.shadow.Get(id)
		if !ok || *v != want {
			log.Fatalf("scan %v: arena and shadow map disagree", id)
		}
		count++
	}
	if count != s.arena.Len() || count != s.shadow.Len() {
		log.Fatalf("scan counted %d values, arena len %d, shadow len %d",
			count, s.arena.Len(), s.shadow.Len())
	}
	s.scans++
}

func (s *stressState) step() {
	switch s.rng.Intn(100) {
	case 0:
		s.scan()
	default:
		switch s.rng.Intn(3) {
		case 0:
			s.insert()
		case 1:
			s.remove()
		case 2:
			s.lookup()
		}
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	slotCount := flag.Int("slots", 10000, "The initial number of values to insert.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the random operation stream.")
	flag.Parse()

	log.Println("Starting arena stress test...")

	log.Printf("Populating arena with %d values (seed %d)...\n", *slotCount, *seed)
	state := newStressState(*seed, *slotCount)
	log.Println("Population complete.")

	report := &Report{
		Duration: *duration,
		Slots:    *slotCount,
		Seed:     *seed,
		BatchTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running random operations for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalBatches int64

	const batchSize = 10000

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			batchStart := time.Now()
			for i := 0; i < batchSize; i++ {
				state.step()
			}
			report.BatchTime.Samples = append(report.BatchTime.Samples, time.Since(batchStart))
			totalBatches++
		}
	}

	// Final full verification pass
	state.scan()

	report.TotalTime = time.Since(startTime)
	report.TotalBatches = totalBatches
	report.Inserts = state.inserts
	report.Removes = state.removes
	report.Lookups = state.lookups
	report.Scans = state.scans
	report.FinalLen = state.arena.Len()
	report.FinalCap = state.arena.Cap()
	report.BatchTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
