package extension

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	assert.Panics(t, func() { Register(testExtension{name: name}) })
}

func TestRegister_Order(t *testing.T) {
	Register(testExtension{name: "test-order-a"})
	Register(testExtension{name: "test-order-b"})

	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-order-a":
			ia = i
		case "test-order-b":
			ib = i
		}
	}
	assert.True(t, ia >= 0 && ib > ia, "registration order preserved: %v", names)
	assert.Equal(t, "test-order-a", Get("test-order-a").Name())
	assert.Nil(t, Get("test-order-missing"))
	assert.Len(t, All(), len(names))
}

func TestContext(t *testing.T) {
	ctx := NewContext(nil, nil)
	assert.Nil(t, ctx.Service())
	assert.Nil(t, ctx.Config())
}
