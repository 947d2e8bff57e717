package vulkan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultString(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{Success, "VK_SUCCESS"},
		{Incomplete, "VK_INCOMPLETE"},
		{ErrorDeviceLost, "VK_ERROR_DEVICE_LOST"},
		{ErrorIncompatibleDriver, "VK_ERROR_INCOMPATIBLE_DRIVER"},
		{Result(-1000001004), "<unknown VkResult>"},
		{Result(99), "<unknown VkResult>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.String())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError("vkEnumerateInstanceLayerProperties (count)", ErrorOutOfHostMemory)
	assert.EqualError(t, err, "vkEnumerateInstanceLayerProperties (count) failed: VK_ERROR_OUT_OF_HOST_MEMORY (-1)")

	err = NewError("vkCreateDevice", Result(-13))
	assert.EqualError(t, err, "vkCreateDevice failed: <unknown VkResult> (-13)")
}

func TestNewErrorSuccessIsNil(t *testing.T) {
	assert.NoError(t, NewError("vkCreateInstance", Success))
}

func TestErrorKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("collect: %w", NewError("vkCreateInstance", ErrorIncompatibleDriver))

	var vkErr *Error
	assert.True(t, errors.As(err, &vkErr))
	assert.Equal(t, ErrorIncompatibleDriver, vkErr.Result)
	assert.Equal(t, "vkCreateInstance", vkErr.Op)
}
