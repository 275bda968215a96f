package bench

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/vector"
)

// Run executes the workload against a fresh container and reports what
// happened. The operation sequence is deterministic for a given request: the
// seed drives the interleaving, the insert and erase positions, and the
// payload bytes.
func Run(req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	opts := []vector.Option[Record]{
		vector.WithClone[Record](cloneRecord),
	}
	if req.MaxCapacity > 0 {
		opts = append(opts, vector.WithMaxCapacity[Record](req.MaxCapacity))
	}
	v := vector.New[Record](opts...)

	if req.Reserve > 0 {
		if err := v.Reserve(req.Reserve); err != nil {
			return nil, app.NewError(app.ErrCodeAllocation, "reserving workload capacity", err)
		}
	}

	rng := rand.New(rand.NewSource(req.Seed))
	plan := buildPlan(rng, req)

	resp := &Response{}
	start := time.Now()
	lastCap := v.Cap()

	for opIdx, op := range plan {
		var err error
		switch op {
		case opAppend:
			err = v.PushBack(newRecord(rng, req.PayloadSize))
			resp.Appends++
		case opInsert:
			if v.Len() == 0 {
				err = v.PushBack(newRecord(rng, req.PayloadSize))
			} else {
				err = v.Insert(rng.Intn(v.Len()+1), newRecord(rng, req.PayloadSize))
			}
			resp.Inserts++
		case opErase:
			if v.Len() == 0 {
				resp.SkippedOps++
				continue
			}
			v.Erase(rng.Intn(v.Len()))
			resp.Erases++
		}
		if err != nil {
			if errors.Is(err, vector.ErrAllocation) {
				return nil, app.NewError(app.ErrCodeAllocation, "workload stopped by allocation budget", err)
			}
			return nil, app.NewError(app.ErrCodeInternal, "workload operation failed", err)
		}
		if c := v.Cap(); c != lastCap {
			resp.Growths = append(resp.Growths, GrowthEvent{Operation: opIdx, FromCap: lastCap, ToCap: c})
			lastCap = c
		}
	}

	resp.Elapsed = time.Since(start)
	resp.Operations = resp.Appends + resp.Inserts + resp.Erases
	resp.FinalLen = v.Len()
	resp.FinalCap = v.Cap()
	if secs := resp.Elapsed.Seconds(); secs > 0 {
		resp.OpsPerSecond = float64(resp.Operations) / secs
	}
	return resp, nil
}

// Schedule reports the growth events a sequence of n appends from empty goes
// through, by running it.
func Schedule(appends int) ([]GrowthEvent, error) {
	if appends < 0 {
		return nil, app.NewError(app.ErrCodeInvalidInput, "append count cannot be negative", nil)
	}
	v := vector.New[struct{}]()
	var events []GrowthEvent
	lastCap := 0
	for i := 0; i < appends; i++ {
		if err := v.PushBack(struct{}{}); err != nil {
			return nil, app.NewError(app.ErrCodeAllocation, "growth schedule run failed", err)
		}
		if c := v.Cap(); c != lastCap {
			events = append(events, GrowthEvent{Operation: i, FromCap: lastCap, ToCap: c})
			lastCap = c
		}
	}
	return events, nil
}

type planOp uint8

const (
	opAppend planOp = iota
	opInsert
	opErase
)

// buildPlan shuffles the requested operations into one interleaved sequence.
func buildPlan(rng *rand.Rand, req Request) []planOp {
	plan := make([]planOp, 0, req.Appends+req.Inserts+req.Erases)
	for i := 0; i < req.Appends; i++ {
		plan = append(plan, opAppend)
	}
	for i := 0; i < req.Inserts; i++ {
		plan = append(plan, opInsert)
	}
	for i := 0; i < req.Erases; i++ {
		plan = append(plan, opErase)
	}
	rng.Shuffle(len(plan), func(i, j int) { plan[i], plan[j] = plan[j], plan[i] })
	return plan
}

func newRecord(rng *rand.Rand, payloadSize int) Record {
	rec := Record{ID: uuid.New()}
	if payloadSize > 0 {
		rec.Payload = make([]byte, payloadSize)
		rng.Read(rec.Payload)
	}
	return rec
}

// cloneRecord deep-copies the payload so container copies never share
// backing arrays.
func cloneRecord(r Record) (Record, error) {
	out := Record{ID: r.ID}
	if r.Payload != nil {
		out.Payload = make([]byte, len(r.Payload))
		copy(out.Payload, r.Payload)
	}
	return out, nil
}
