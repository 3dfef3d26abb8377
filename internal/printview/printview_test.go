package printview

import (
	"bytes"
	"testing"

	"employee-admin/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []employee.Employee{
		{ID: 1, Name: "Asha", Gender: employee.Female, DOB: "1992-03-01", State: employee.Kerala, Image: "data:image/png;base64,AAAA", IsActive: true},
		{ID: 2, Name: "<script>x</script>", Gender: employee.Male, DOB: "1988-11-20", State: employee.TamilNadu, Image: "javascript:alert(1)"},
	})
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, "<h2>Employee List</h2>")
	assert.Contains(t, html, `src="data:image/png;base64,AAAA"`)
	assert.Contains(t, html, "Tamil Nadu")
	assert.Contains(t, html, "Active")
	assert.Contains(t, html, "Inactive")
	assert.NotContains(t, html, "<script>x</script>")
	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "Actions")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.Contains(t, buf.String(), "No employees found")
}
