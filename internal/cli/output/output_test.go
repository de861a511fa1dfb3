package output

import (
	"bytes"
	"io"
	"testing"
	"time"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/hierarchy"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Result(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: FormatJSON, want: `{"status":"ok","data":{"count":2}}` + "\n"},
		{name: "text", format: FormatText, want: "two rows\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Printer{Format: tt.format, Writer: &out}

			err := p.Result(map[string]int{"count": 2}, func(w io.Writer) {
				_, _ = io.WriteString(w, "two rows\n")
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrinter_Failure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantJSON string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrCategoryNotFound,
			wantJSON: `{"status":"error","error":{"code":"CATEGORY_NOT_FOUND","class":"not_found","message":"Category not found"}}`,
		},
		{
			name:     "plain error",
			err:      errors.New("disk full"),
			wantJSON: `{"status":"error","error":{"code":"INTERNAL_ERROR","class":"storage","message":"disk full"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Printer{Format: FormatJSON, Writer: &out}

			require.NoError(t, p.Failure(tt.err))

			assert.JSONEq(t, tt.wantJSON, out.String())
		})
	}
}

func TestPrinter_FailureTextGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Format: FormatText, Writer: &out, ErrWriter: &errOut}

	require.NoError(t, p.Failure(domainerrors.ErrValidationFailed.WithDetails("name: required")))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "VALIDATION_FAILED")
	assert.NotContains(t, errOut.String(), "name: required")
}

func TestPrinter_Verbosef(t *testing.T) {
	var out, errOut bytes.Buffer
	quiet := &Printer{Writer: &out, ErrWriter: &errOut}
	quiet.Verbosef("hidden")
	assert.Empty(t, errOut.String())

	loud := &Printer{Writer: &out, ErrWriter: &errOut, Verbose: true}
	loud.Verbosef("applying %d statements", 3)
	assert.Contains(t, errOut.String(), "applying 3 statements")
	assert.Empty(t, out.String())
}

func TestTable(t *testing.T) {
	var out bytes.Buffer

	Table(&out, []string{"ID", "NAME"}, [][]string{{"1", "Oat Milk"}, {"22", "Rye"}})

	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "Oat Milk")
	assert.Contains(t, string(lines[2]), "Rye")
}

func TestTable_Empty(t *testing.T) {
	var out bytes.Buffer

	Table(&out, []string{"ID"}, nil)

	assert.Contains(t, out.String(), "(none)")
}

func TestTree(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	newCategory := func(name string, parent *uuid.UUID, deleted bool) *entity.Category {
		p := entity.CategoryParams{ID: uuid.New(), ParentID: parent, Name: name, CreatedAt: now, UpdatedAt: now}
		if deleted {
			p.DeletedAt = &now
		}
		c, err := entity.NewCategory(p)
		require.NoError(t, err)

		return c
	}
	food := newCategory("Food", nil, false)
	foodID := food.ID()
	dairy := newCategory("Dairy", &foodID, true)

	root := &hierarchy.Node{Children: []*hierarchy.Node{
		{Category: food, Children: []*hierarchy.Node{{Category: dairy}}},
	}}

	var out bytes.Buffer
	Tree(&out, root)

	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("Food")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("  Dairy")))
	assert.Contains(t, string(lines[1]), "(deleted)")
}

func TestTree_Empty(t *testing.T) {
	var out bytes.Buffer

	Tree(&out, &hierarchy.Node{})

	assert.Contains(t, out.String(), "(no categories)")
}
