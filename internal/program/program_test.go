package program

import (
	"bytes"
	"context"
	"errors"
	"opdemo/internal/demo"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultProgram_Output(t *testing.T) {
	var out bytes.Buffer
	report, err := Default(nil).Run(context.Background(), &out, DefaultSettings())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := []string{"0", "2", "4", "6", "8", "Hello, World!"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{StepArithmetic, StepBitwise, StepControlFlow, StepMemory, StepOutput}, report.Ran)
}

func TestDefaultProgram_Report(t *testing.T) {
	report, err := Silent(context.Background(), Default(nil), DefaultSettings())
	require.NoError(t, err)

	require.NotNil(t, report.Arithmetic)
	assert.Equal(t, demo.ArithmeticResult{Sum: 30, Difference: -10, Product: 200, Quotient: 0}, *report.Arithmetic)

	require.NotNil(t, report.Bitwise)
	assert.Equal(t, 0x3C0, report.Bitwise.ShiftLeft)
	assert.Equal(t, 0x03, report.Bitwise.ShiftRight)

	assert.Equal(t, []int{0, 2, 4, 6, 8}, report.Evens)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, report.Squares)
}

func TestSelect(t *testing.T) {
	p, err := Default(nil).Select(StepOutput, StepControlFlow)
	require.NoError(t, err)

	var names []string
	for _, s := range p.Steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StepControlFlow, StepOutput}, names, "canonical order is kept")

	var out bytes.Buffer
	_, err = p.Run(context.Background(), &out, DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "0\n2\n4\n6\n8\nHello, World!\n", out.String())
}

func TestSelect_NoNamesKeepsAll(t *testing.T) {
	p := Default(nil)
	same, err := p.Select()
	require.NoError(t, err)
	assert.Len(t, same.Steps(), 5)
}

func TestSelect_Unknown(t *testing.T) {
	_, err := Default(nil).Select(StepMemory, "teleport")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStep))
	assert.Contains(t, err.Error(), "teleport")
}

func TestRun_StopsAtFailingStep(t *testing.T) {
	boom := errors.New("boom")
	var after bool
	p := New([]Step{
		{Name: "first", Run: func(context.Context, *Env) error { return nil }},
		{Name: "second", Run: func(context.Context, *Env) error { return boom }},
		{Name: "third", Run: func(context.Context, *Env) error { after = true; return nil }},
	}, nil)

	report, err := p.Run(context.Background(), &bytes.Buffer{}, DefaultSettings())
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "second", stepErr.Step)
	assert.ErrorIs(t, err, boom)
	assert.False(t, after)
	assert.Equal(t, []string{"first"}, report.Ran)
}

func TestRun_DivisionByZero(t *testing.T) {
	settings := DefaultSettings()
	settings.ArithmeticB = 0

	_, err := Silent(context.Background(), Default(nil), settings)
	assert.ErrorIs(t, err, demo.ErrDivisionByZero)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	report, err := Default(nil).Run(ctx, &out, DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Ran)
	assert.Empty(t, out.String())
}

func TestRun_DeadlineDuringControlFlow(t *testing.T) {
	p, err := Default(nil).Select(StepControlFlow)
	require.NoError(t, err)

	settings := DefaultSettings()
	settings.Limit = 50_000_000

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	report, err := Silent(ctx, p, settings)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepControlFlow, stepErr.Step)
	assert.Empty(t, report.Ran)
	assert.Less(t, elapsed, time.Second)
	assert.Less(t, len(report.Evens), settings.Limit/2)
}

func TestRun_DeadlinePassedDuringLastStep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New([]Step{
		{Name: "only", Run: func(context.Context, *Env) error { cancel(); return nil }},
	}, nil)

	report, err := p.Run(ctx, &bytes.Buffer{}, DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"only"}, report.Ran)
}

func TestReport_WriteYAML(t *testing.T) {
	report, err := Silent(context.Background(), Default(nil), DefaultSettings())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	arith, ok := decoded["arithmetic"].(map[string]any)
	require.True(t, ok, "arithmetic section missing: %s", buf.String())
	assert.Equal(t, -10, arith["difference"])
	assert.Contains(t, buf.String(), "shift_left: 960")
}
