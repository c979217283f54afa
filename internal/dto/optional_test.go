package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	var req struct {
		Name    Optional[string] `json:"name"`
		Phone   Optional[string] `json:"phone"`
		Price   Optional[int]    `json:"price"`
		Missing Optional[int]    `json:"missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"job","phone":null,"price":150}`), &req))

	assert.True(t, req.Name.Set)
	assert.False(t, req.Name.Null)
	assert.Equal(t, "job", *req.Name.Ptr())

	assert.True(t, req.Phone.Set)
	assert.True(t, req.Phone.Null)
	assert.Nil(t, req.Phone.Ptr())

	assert.True(t, req.Price.Set)
	assert.Equal(t, 150, req.Price.Value)

	assert.False(t, req.Missing.Set)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var req struct {
		Price Optional[int] `json:"price"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"price":"lots"}`), &req))
}
