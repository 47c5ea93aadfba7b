package committer

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestCommitPlan(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.True(t, plan.IsEmpty(), "nil mutations are ignored")

	plan.Add(spanner.Delete("cart_items", spanner.Key{"u1"}.AsPrefix()))
	plan.AddMultiple([]*spanner.Mutation{
		spanner.Insert("orders", []string{"order_id"}, []interface{}{"o1"}),
		nil,
		spanner.Insert("order_items", []string{"order_id", "order_item_id"}, []interface{}{"o1", "i1"}),
	})

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 3, plan.Count())
	assert.Len(t, plan.Mutations(), 3)
}
