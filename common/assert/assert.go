package assert

import (
	"github.com/johnxnguyen/Newton/common/utils"
)

// Assert aborts with err when cond does not hold.
func Assert(cond bool, err error) {
	if !cond {
		utils.Check(err, "Assertion error")
	}
}
