package cli

import (
	"github.com/sitewire/sitewire/pkg/multierr"
	"go.uber.org/zap"
)

type ErrorHandler struct {
	InternalDebug bool
	Verbose       bool
	PostPrintHook func()
}

func (h ErrorHandler) PrintErr(err error) {
	h.printErr(err, 0)
	if h.PostPrintHook != nil {
		h.PostPrintHook()
	}
}

func (h ErrorHandler) printErr(err error, num int) (nextNum int) {
	log := zap.L()

	errFmt := "%v"
	if h.InternalDebug {
		errFmt = "%+v"
	} else if h.Verbose {
		errFmt = "%#v"
	}

	merr, ok := err.(multierr.Error)
	if ok {
		switch len(merr) {
		case 0:
			return

		case 1:
			err = merr[0]

		default:
			log.Sugar().Errorf("%d errors:", len(merr))
			for _, err := range merr {
				num = h.printErr(err, num+1)
			}
			return num
		}
	}

	log.Sugar().Errorf("[err %d] "+errFmt, num, err)

	return num
}
