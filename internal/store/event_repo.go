package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Yashshokeen-11/ALP/ent"
	"github.com/Yashshokeen-11/ALP/ent/llmrequestevent"
	"github.com/Yashshokeen-11/ALP/ent/pathevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPathEvent(ctx context.Context, data PathEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSubjectID(data.SubjectID).
		SetThreshold(data.Threshold).
		SetConceptCount(data.ConceptCount).
		SetGapCount(data.GapCount).
		SetTotalMinutes(data.TotalMinutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	records := make([]LLMRequestRecord, len(events))
	for i, e := range events {
		records[i] = toLLMRequestRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestRecord, error) {
	e, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query LLM request event: %w", err)
	}
	rec := toLLMRequestRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Purpose })
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageRow, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Model })
}

func (r *eventRepo) llmUsage(ctx context.Context, keyOf func(*ent.LLMRequestEvent) string) ([]LLMUsageRow, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byKey := make(map[string]*LLMUsageRow)
	for _, e := range events {
		key := keyOf(e)
		row, ok := byKey[key]
		if !ok {
			row = &LLMUsageRow{Key: key}
			byKey[key] = row
		}
		row.Requests++
		if !e.Success {
			row.Failures++
		}
		row.InputTokens += e.InputTokens
		row.OutputTokens += e.OutputTokens
	}

	rows := make([]LLMUsageRow, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows, nil
}

func (r *eventRepo) RecentPaths(ctx context.Context, learnerID string, limit int) ([]PathEventRecord, error) {
	query := r.client.PathEvent.Query().
		Order(ent.Desc(pathevent.FieldSequence))

	if learnerID != "" {
		query = query.Where(pathevent.LearnerID(learnerID))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query path events: %w", err)
	}

	records := make([]PathEventRecord, len(events))
	for i, e := range events {
		records[i] = PathEventRecord{
			LearnerID:    e.LearnerID,
			SubjectID:    e.SubjectID,
			Threshold:    e.Threshold,
			ConceptCount: e.ConceptCount,
			GapCount:     e.GapCount,
			TotalMinutes: e.TotalMinutes,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}

func toLLMRequestRecord(e *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
	}
}
