package employee

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	asha := Employee{ID: 1, Name: "Asha", Gender: Female, DOB: "1992-03-01", State: Kerala, IsActive: true}
	ravi := Employee{ID: 2, Name: "Ravi", Gender: Male, DOB: "1988-11-20", State: Karnataka, IsActive: false}
	meera := Employee{ID: 3, Name: "MEERA", Gender: Female, DOB: "2000-07-07", State: TamilNadu, IsActive: false}
	list := []Employee{asha, ravi, meera}

	tests := []struct {
		name     string
		criteria Criteria
		want     []Employee
	}{
		{"empty matches all", Criteria{}, list},
		{"name active", Criteria{Name: "a", Status: StatusActive}, []Employee{asha}},
		{"case-insensitive name", Criteria{Name: "mee"}, []Employee{meera}},
		{"gender", Criteria{Gender: Female}, []Employee{asha, meera}},
		{"inactive", Criteria{Status: StatusInactive}, []Employee{ravi, meera}},
		{"all three", Criteria{Name: "r", Gender: Female, Status: StatusInactive}, []Employee{meera}},
		{"no match", Criteria{Name: "zz"}, []Employee{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Apply(list))
		})
	}
	assert.Equal(t, []Employee{asha, ravi, meera}, list, "Apply must not touch its input")
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria("as", "Female", "active")
	require.NoError(t, err)
	assert.Equal(t, Criteria{Name: "as", Gender: Female, Status: StatusActive}, c)

	_, err = ParseCriteria("", "female", "")
	assert.Error(t, err)
	_, err = ParseCriteria("", "", "retired")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	s := Summarize([]Employee{{IsActive: true}, {IsActive: false}, {IsActive: true}})
	assert.Equal(t, Summary{Total: 3, Active: 2, Inactive: 1}, s)
}

func TestCodecRoundTrip(t *testing.T) {
	list := []Employee{
		{ID: 1717171717171, Name: "Asha", Gender: Female, DOB: "1992-03-01", State: Kerala, Image: "data:image/png;base64,AAAA", IsActive: true},
		{ID: 1717171717172, Name: "Ravi", Gender: Male, DOB: "1988-11-20", State: TamilNadu},
	}
	b, err := Encode(list)
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestCodecSnapshotFormat(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	// snapshot shape written by the browser dashboard
	raw := `[{"id":1700000000000,"name":"Asha","gender":"Female","dob":"1992-03-01","state":"Tamil Nadu","image":"","isActive":false}]`
	got, err := Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, TamilNadu, got[0].State)
	assert.False(t, got[0].IsActive)

	out, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1700000000000,"name":"Asha","gender":"Female","dob":"1992-03-01","state":"Tamil Nadu","isActive":false}`, string(out))

	got, err = Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Decode([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = Decode([]byte("{"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := Employee{Name: "Asha", Gender: Female, DOB: "1992-03-01", State: Kerala}
	assert.NoError(t, Validate(ok))

	bad := ok
	bad.Gender = "Other"
	bad.State = "Goa"
	err := Validate(bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"gender", "state"}, keys(verr.Fields))
	assert.Equal(t, "invalid employee: gender: Gender must be Male or Female; state: State must be Karnataka, Tamil Nadu or Kerala", err.Error())
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, k := range []string{"name", "gender", "dob", "state"} {
		if _, ok := m[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

func TestClockIDs(t *testing.T) {
	clock := &movingClock{now: time.UnixMilli(100)}
	g := NewClockIDs(clock)

	assert.Equal(t, int64(100), g.Next())
	assert.Equal(t, int64(101), g.Next(), "same tick must still be unique")

	clock.now = time.UnixMilli(500)
	assert.Equal(t, int64(500), g.Next())

	clock.now = time.UnixMilli(200) // clock stepped back
	assert.Equal(t, int64(501), g.Next())

	g.Seed(10_000)
	assert.Equal(t, int64(10_001), g.Next())
	g.Seed(5)
	assert.Equal(t, int64(10_002), g.Next())
}

type movingClock struct{ now time.Time }

func (c *movingClock) Now() time.Time { return c.now }
