// Package committer collects Spanner mutations from repositories and applies them atomically.
//
// Repositories never write directly. They return *spanner.Mutation values,
// the caller gathers them in a CommitPlan, and a Committer applies the plan in a
// single transaction:
//
//	plan := committer.NewPlan()
//	plan.Add(orderMut)
//	plan.AddMultiple(itemMuts)
//	plan.Add(cartModel.DeleteMut(order.UserID, productID))
//	plan.Add(eventMut)
//	return comm.Apply(ctx, plan)
//
// Either every mutation lands or none does.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is a typed wrapper around Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyChecked runs check inside a read-write transaction and buffers the plan only if
// check succeeds. The error returned by check is passed through unwrapped so callers
// can match domain sentinels with errors.Is.
func (c *Committer) ApplyChecked(ctx context.Context, plan *CommitPlan, check func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if plan.IsEmpty() {
		return nil
	}

	var checkErr error
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		checkErr = nil
		if check != nil {
			if err := check(ctx, txn); err != nil {
				checkErr = err
				return err
			}
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if checkErr != nil {
		return checkErr
	}
	if err != nil {
		return fmt.Errorf("failed to apply commit plan in transaction: %w", err)
	}

	return nil
}
