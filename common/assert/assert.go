package assert

import (
	"github.com/bytearena/stagelimits/common/utils"
	"github.com/pkg/errors"
)

// Assert exits the process with a formatted error when cond is false.
func Assert(cond bool, msg string) {

	if !cond {
		utils.FailWith(errors.Wrap(errors.New(msg), "Assertion error"))
	}
}
