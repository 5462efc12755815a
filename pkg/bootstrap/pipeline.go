package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/rs/zerolog"
)

// StepFunc performs one step. Soft failures go to r.Warn; a returned
// error is fatal unless the pipeline continues on error.
type StepFunc func(ctx context.Context, r *Report) error

// Step is a named unit of work
type Step struct {
	Name        string
	Description string
	Run         StepFunc
}

// StepStatus is the outcome of a step
type StepStatus string

const (
	StatusDone    StepStatus = "done"
	StatusFailed  StepStatus = "failed"
	StatusSkipped StepStatus = "skipped"
	StatusPlanned StepStatus = "planned"
)

// StepReport records how one step went
type StepReport struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      StepStatus    `json:"status"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// Report is the outcome of a pipeline run
type Report struct {
	Steps     []StepReport `json:"steps"`
	Warnings  []string     `json:"warnings,omitempty"`
	Cancelled bool         `json:"cancelled"`
	DryRun    bool         `json:"dryRun"`
}

// Warn records a non-fatal problem
func (r *Report) Warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Step returns the report for name, or nil
func (r *Report) Step(name string) *StepReport {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return &r.Steps[i]
		}
	}
	return nil
}

// Ran reports whether step name ran to completion
func (r *Report) Ran(name string) bool {
	s := r.Step(name)
	return s != nil && s.Status == StatusDone
}

// Failed returns the steps that failed
func (r *Report) Failed() []StepReport {
	var failed []StepReport
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Pipeline runs steps in order
type Pipeline struct {
	steps           []Step
	dryRun          bool
	continueOnError bool
	logger          zerolog.Logger
}

// PipelineOption configures a Pipeline
type PipelineOption func(*Pipeline)

// WithDryRun reports every step as planned without running it
func WithDryRun(dryRun bool) PipelineOption {
	return func(p *Pipeline) { p.dryRun = dryRun }
}

// WithContinueOnError runs every step even after a failure
func WithContinueOnError() PipelineOption {
	return func(p *Pipeline) { p.continueOnError = true }
}

// NewPipeline creates a pipeline over steps
func NewPipeline(steps []Step, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		steps:  steps,
		logger: logging.GetLogger("bootstrap.pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the steps. A cancelled run (the user declined) stops
// immediately and returns an ErrCancelled error with Report.Cancelled set.
// With ContinueOnError the returned error lists every failed step.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{DryRun: p.dryRun}
	var firstErr error

	for i, step := range p.steps {
		sr := StepReport{Name: step.Name, Description: step.Description}

		if p.dryRun {
			sr.Status = StatusPlanned
			report.Steps = append(report.Steps, sr)
			continue
		}

		if err := ctx.Err(); err != nil {
			p.skipFrom(report, i)
			return report, errors.Wrap(err, errors.ErrCommandExecute, "run interrupted")
		}

		done := logging.LogOperationStart(p.logger, step.Name)
		start := time.Now()
		err := step.Run(ctx, report)
		sr.Duration = time.Since(start)
		done()

		if err == nil {
			sr.Status = StatusDone
			report.Steps = append(report.Steps, sr)
			continue
		}

		if errors.IsErrorCode(err, errors.ErrCancelled) {
			sr.Status = StatusSkipped
			report.Steps = append(report.Steps, sr)
			report.Cancelled = true
			p.skipFrom(report, i+1)
			p.logger.Info().Str("step", step.Name).Msg("Cancelled by user")
			return report, err
		}

		sr.Status = StatusFailed
		sr.Error = err.Error()
		report.Steps = append(report.Steps, sr)
		p.logger.Error().Err(err).Str("step", step.Name).Msg("Step failed")

		if !p.continueOnError {
			p.skipFrom(report, i+1)
			return report, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return report, aggregate(report.Failed(), firstErr)
	}
	return report, nil
}

func (p *Pipeline) skipFrom(report *Report, from int) {
	for _, step := range p.steps[from:] {
		report.Steps = append(report.Steps, StepReport{
			Name:        step.Name,
			Description: step.Description,
			Status:      StatusSkipped,
		})
	}
}

// aggregate folds several step failures into one error, keeping the first
// failure's code
func aggregate(failed []StepReport, first error) error {
	if len(failed) == 1 {
		return first
	}
	names := make([]string, len(failed))
	for i, f := range failed {
		names[i] = f.Name
	}
	return errors.Wrapf(first, errors.GetErrorCode(first), "%d steps failed (%s)", len(failed), strings.Join(names, ", ")).
		WithDetail("failed_steps", names)
}
