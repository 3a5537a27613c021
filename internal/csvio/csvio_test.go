package csvio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthornhill/wayfare/internal/domain"
)

var testNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func TestExport_HeaderAndRows(t *testing.T) {
	a := domain.New(domain.Input{
		Name:          "Flight to Paris",
		Date:          "2025-09-19",
		StartTime:     "08:30",
		TransportMode: "plane",
		Booking:       "TRUE",
		Cost:          "800",
	}, testNow)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []*domain.Activity{a}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(domain.CSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], "Flight to Paris")
	assert.Contains(t, lines[1], "2025-09-19")
	assert.Contains(t, lines[1], "800")
}

func TestExport_QuotesSpecialCharacters(t *testing.T) {
	a := domain.New(domain.Input{
		Name:              `Dinner, "Le Chat Noir"`,
		Date:              "2025-09-20",
		AdditionalDetails: "reserve window seat\ncall ahead",
	}, testNow)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []*domain.Activity{a}))

	inputs, err := ReadInputs(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, `Dinner, "Le Chat Noir"`, inputs[0].Name)
	assert.Equal(t, "reserve window seat\ncall ahead", inputs[0].AdditionalDetails)
}

func TestReadInputs_CanonicalHeader(t *testing.T) {
	in := strings.NewReader(
		"Activity,Date,Start Time,Cost\n" +
			"Flight to Paris,2025-09-19,08:30,800\n" +
			"Louvre museum,2025-09-21,,20\n")

	inputs, err := ReadInputs(in)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Flight to Paris", inputs[0].Name)
	assert.Equal(t, "08:30", inputs[0].StartTime)
	assert.Equal(t, "800", inputs[0].Cost)
	assert.Equal(t, "Louvre museum", inputs[1].Name)
	assert.Equal(t, "", inputs[1].StartTime)
}

func TestReadInputs_FieldNameHeader(t *testing.T) {
	in := strings.NewReader(
		"activity,date,startTime,reachTo\n" +
			"Train to Lyon,2025-09-22,09:00,Lyon\n")

	inputs, err := ReadInputs(in)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Train to Lyon", inputs[0].Name)
	assert.Equal(t, "Lyon", inputs[0].ReachTo)
}

func TestReadInputs_ShortRowPadded(t *testing.T) {
	in := strings.NewReader(
		"Activity,Date,Cost\n" +
			"Ferry\n")

	inputs, err := ReadInputs(in)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Ferry", inputs[0].Name)
	assert.Equal(t, "", inputs[0].Date)
	assert.Equal(t, "", inputs[0].Cost)
}

func TestReadInputs_EmptyInput(t *testing.T) {
	_, err := ReadInputs(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	activities := []*domain.Activity{
		domain.New(domain.Input{Name: "Flight to Paris", Date: "2025-09-19", Booking: "TRUE", Cost: "800"}, testNow),
		domain.New(domain.Input{Name: "Hotel Le Meurice", Date: "2025-09-19", Cost: "300"}, testNow),
		domain.New(domain.Input{Name: "Louvre museum", Date: "2025-09-21", Cost: "20"}, testNow),
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, activities))

	inputs, err := ReadInputs(&buf)
	require.NoError(t, err)
	require.Len(t, inputs, len(activities))

	for i, in := range inputs {
		back := domain.New(in, testNow)
		assert.Equal(t, activities[i].Name, back.Name)
		assert.Equal(t, activities[i].DateString(), back.DateString())
		assert.Equal(t, activities[i].Cost, back.Cost)
		assert.Equal(t, activities[i].Booking, back.Booking)
		assert.Equal(t, activities[i].Category, back.Category)
	}
}
