// File: pkg/combo/processor.go
package combo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Processor runs the file-level combo operations. It holds no state between
// calls; each operation owns its working set for the duration of the call.
type Processor struct {
	logger   *zap.Logger
	reporter Reporter
	validate func(op string, opts any) error
}

// NewProcessor creates a Processor. A nil logger or reporter is replaced by a no-op.
func NewProcessor(logger *zap.Logger, reporter Reporter) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Processor{
		logger:   logger,
		reporter: reporter,
		validate: func(op string, opts any) error {
			return validateOptions(v, op, opts)
		},
	}
}

// validateOptions runs struct validation and reports failures as invalid arguments.
func validateOptions(v *validator.Validate, op string, opts any) error {
	err := v.Struct(opts)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &OpError{Op: op + ".validate", Kind: KindInvalidArgument, Err: err}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), describeTag(fe)))
	}
	return &OpError{Op: op + ".validate", Kind: KindInvalidArgument, Err: errors.New(strings.Join(msgs, "; "))}
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
