package log

import "go.uber.org/zap"

var (
	base  = zap.NewNop()
	sugar = base.Sugar()
)

// Init builds the process logger: JSON in production, console in dev.
func Init(prod bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if prod {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	base = l
	sugar = l.Sugar()
	return l, nil
}

func L() *zap.Logger { return base }

func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }
