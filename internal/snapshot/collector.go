package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/clawboard/boardlens/internal/board"
	"github.com/clawboard/boardlens/internal/types"
)

// defaultDetailWorkers bounds concurrent detail fetches. The rate limiter on
// the board client paces the actual requests; this just caps in-flight calls.
const defaultDetailWorkers = 4

// Source is the part of the board client the collector needs.
type Source interface {
	Tasks(ctx context.Context, limit int) ([]types.Task, error)
	Details(ctx context.Context, taskID string) (*board.TaskDetails, error)
}

// Details is a raw per-task dump: the task record, its full comment thread,
// and when it was collected.
type Details struct {
	Task        *types.Task     `json:"task"`
	Comments    []types.Comment `json:"comments"`
	CollectedAt time.Time       `json:"collected_at"`
}

// Snapshot is the on-disk dump format: the whole corpus plus per-task detail
// dumps, stamped with the collection time and the seal date it was gathered
// under.
type Snapshot struct {
	ID                  string             `json:"id"`
	CollectionTimestamp time.Time          `json:"collection_timestamp"`
	SealDate            time.Time          `json:"seal_date"`
	Tasks               []types.Task       `json:"tasks"`
	TaskDetails         map[string]Details `json:"task_details"`
}

// Collector gathers raw board data without analyzing it. Runs are permitted
// only before the seal date; at or after it, Run fails with a SealError and
// nothing is fetched.
type Collector struct {
	Source   Source
	Store    *Store
	SealDate time.Time
	DataDir  string
	Limit    int

	// Workers bounds concurrent detail fetches. 0 = default.
	Workers int

	// Now is the clock, injectable for tests. nil = time.Now.
	Now func() time.Time

	Log *logrus.Logger
}

// Run performs one blind collection: seal check, corpus fetch, per-task
// detail enrichment, dated JSON dump, catalog row. Detail failures skip the
// task and the run continues; corpus fetch failure aborts the run.
func (c *Collector) Run(ctx context.Context) (*Meta, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	log := c.Log
	if log == nil {
		log = logrus.New()
	}

	started := now().UTC()
	if !started.Before(c.SealDate) {
		return nil, &SealError{SealDate: c.SealDate}
	}

	log.WithFields(logrus.Fields{
		"seal_date": c.SealDate.Format(time.RFC3339),
		"limit":     c.Limit,
	}).Info("starting blind collection")

	tasks, err := c.Source.Tasks(ctx, c.Limit)
	if err != nil {
		return nil, err
	}
	log.WithField("tasks", len(tasks)).Info("corpus fetched, enriching with details")

	details := c.collectDetails(ctx, tasks, now, log)

	snap := Snapshot{
		ID:                  uuid.New().String(),
		CollectionTimestamp: now().UTC(),
		SealDate:            c.SealDate,
		Tasks:               tasks,
		TaskDetails:         details,
	}

	path, err := c.writeDump(&snap, started)
	if err != nil {
		return nil, err
	}

	commentCount := 0
	for _, d := range details {
		commentCount += len(d.Comments)
	}

	meta := Meta{
		ID:           snap.ID,
		CollectedAt:  snap.CollectionTimestamp,
		SealDate:     snap.SealDate,
		TaskCount:    len(tasks),
		CommentCount: commentCount,
		Path:         path,
	}
	if c.Store != nil {
		if err := c.Store.Record(ctx, meta); err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"snapshot": path,
		"tasks":    meta.TaskCount,
		"comments": meta.CommentCount,
	}).Info("snapshot stored")

	return &meta, nil
}

// collectDetails fans detail fetches out over a bounded worker group. The
// analytics engine never parallelizes; this is pure collection I/O. A failed
// task is logged and left out of the map.
func (c *Collector) collectDetails(ctx context.Context, tasks []types.Task, now func() time.Time, log *logrus.Logger) map[string]Details {
	workers := c.Workers
	if workers <= 0 {
		workers = defaultDetailWorkers
	}

	var mu sync.Mutex
	details := make(map[string]Details, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			d, err := c.Source.Details(ctx, task.ID)
			if err != nil {
				log.WithError(err).WithField("task", task.ID).Warn("skipping task detail")
				return nil
			}
			mu.Lock()
			details[task.ID] = Details{
				Task:        d.Task,
				Comments:    d.Comments,
				CollectedAt: now().UTC(),
			}
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only observes context cancellation.
	_ = g.Wait()
	return details
}

func (c *Collector) writeDump(snap *Snapshot, started time.Time) (string, error) {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(c.DataDir, fmt.Sprintf("snapshot_%s.json", started.Format("20060102_150405")))
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return path, nil
}

// DaysUntilSeal reports whole days from now to the seal date; negative once
// the seal has passed.
func (c *Collector) DaysUntilSeal() int {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return int(c.SealDate.Sub(now().UTC()).Hours() / 24)
}

// Load reads a stored snapshot dump back into memory, letting the analysis
// commands run offline from collected data after the seal.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}
