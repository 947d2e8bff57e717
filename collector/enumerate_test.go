package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/nunet/vkinfo/vulkan"
)

// scripted answers each query call with the next entry of results, writing
// from list the way a driver would.
type scripted struct {
	lists   [][]int
	results []vulkan.Result
	calls   int
}

func (s *scripted) query(count *uint32, buf []int) vulkan.Result {
	list := s.lists[s.calls]
	ret := s.results[s.calls]
	s.calls++
	if buf == nil {
		*count = uint32(len(list))
		return ret
	}
	*count = uint32(copy(buf, list))
	return ret
}

func TestCollectWithRetry(t *testing.T) {
	tests := []struct {
		name  string
		query *scripted
		want  []int
		err   string
		calls int
	}{
		{
			name: "success",
			query: &scripted{
				lists:   [][]int{{1, 2}, {1, 2}},
				results: []vulkan.Result{vulkan.Success, vulkan.Success},
			},
			want:  []int{1, 2},
			calls: 2,
		},
		{
			name: "empty",
			query: &scripted{
				lists:   [][]int{{}, {}},
				results: []vulkan.Result{vulkan.Success, vulkan.Success},
			},
			want:  []int{},
			calls: 2,
		},
		{
			name: "incomplete refreshes the count",
			query: &scripted{
				lists:   [][]int{{1, 2, 3}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}},
				results: []vulkan.Result{vulkan.Success, vulkan.Incomplete, vulkan.Success, vulkan.Success},
			},
			want:  []int{1, 2, 3, 4, 5},
			calls: 4,
		},
		{
			name: "list shrinks",
			query: &scripted{
				lists:   [][]int{{1, 2, 3}, {1}},
				results: []vulkan.Result{vulkan.Success, vulkan.Success},
			},
			want:  []int{1},
			calls: 2,
		},
		{
			name: "count fails",
			query: &scripted{
				lists:   [][]int{{}},
				results: []vulkan.Result{vulkan.ErrorOutOfHostMemory},
			},
			err:   "vkEnumerateThings (count) failed: VK_ERROR_OUT_OF_HOST_MEMORY (-1)",
			calls: 1,
		},
		{
			name: "fill fails",
			query: &scripted{
				lists:   [][]int{{1}, {1}},
				results: []vulkan.Result{vulkan.Success, vulkan.ErrorDeviceLost},
			},
			err:   "vkEnumerateThings (data) failed: VK_ERROR_DEVICE_LOST (-4)",
			calls: 2,
		},
		{
			name: "recount after incomplete fails",
			query: &scripted{
				lists:   [][]int{{1}, {1, 2}, {}},
				results: []vulkan.Result{vulkan.Success, vulkan.Incomplete, vulkan.ErrorInitializationFailed},
			},
			err:   "vkEnumerateThings (count) failed: VK_ERROR_INITIALIZATION_FAILED (-3)",
			calls: 3,
		},
		{
			name: "non-error status from fill",
			query: &scripted{
				lists:   [][]int{{1}, {1}},
				results: []vulkan.Result{vulkan.Success, vulkan.NotReady},
			},
			err:   "vkEnumerateThings (data) failed: VK_NOT_READY (1)",
			calls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectWithRetry("vkEnumerateThings", tt.query.query)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.calls, tt.query.calls)
		})
	}
}
