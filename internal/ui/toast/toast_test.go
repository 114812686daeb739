package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hollisbeck/vellum/internal/types"
	"github.com/hollisbeck/vellum/internal/ui/styles"
)

func TestRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{}, 80)

	assert.Equal(t, "", result, "Empty toast list should return empty string")
}

func TestRenderer_Render_SingleToast(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastInfo, "Document saved", 5*time.Second),
	}

	result := renderer.Render(toasts, 80)

	assert.NotEmpty(t, result)
	assert.Contains(t, result, "Document saved")
}

func TestRenderer_Render_MultipleToastsStack(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastInfo, "First toast", 5*time.Second),
		types.NewToast(types.ToastSuccess, "Second toast", 5*time.Second),
		types.NewToast(types.ToastError, "Third toast", 5*time.Second),
	}

	result := renderer.Render(toasts, 80)

	assert.Contains(t, result, "First toast")
	assert.Contains(t, result, "Second toast")
	assert.Contains(t, result, "Third toast")

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1, "Multiple toasts should create multiple lines")
}

func TestRenderer_Render_DifferentLevels(t *testing.T) {
	renderer := New(styles.New())

	tests := []struct {
		name  string
		level types.ToastLevel
	}{
		{"Info", types.ToastInfo},
		{"Success", types.ToastSuccess},
		{"Warning", types.ToastWarning},
		{"Error", types.ToastError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toasts := []types.Toast{
				types.NewToast(tt.level, "Test "+tt.name, 5*time.Second),
			}

			result := renderer.Render(toasts, 80)

			assert.NotEmpty(t, result)
			assert.Contains(t, result, "Test "+tt.name)
		})
	}
}
