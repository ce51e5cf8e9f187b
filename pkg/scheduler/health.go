package scheduler

import (
	"time"

	"github.com/umputun/newsbot/pkg/domain"
)

// DeactivationThreshold is the number of consecutive failed checks that turns a source off
const DeactivationThreshold = 10

const maxErrorText = 1000

// markSuccess records a successful check, the error counter resets only when something new was found
func markSuccess(src *domain.Source, now time.Time, newItems int) {
	src.LastChecked = &now
	src.CheckCount++
	if newItems == 0 {
		return
	}
	src.LastUpdated = &now
	src.ErrorCount = 0
	src.LastError = ""
}

// markFailure records a failed check, returns true if the source got deactivated by it
func markFailure(src *domain.Source, now time.Time, err error) bool {
	src.LastChecked = &now
	src.CheckCount++
	src.ErrorCount++
	src.LastError = errorText(err)
	if src.Active && src.ErrorCount >= DeactivationThreshold {
		src.Active = false
		return true
	}
	return false
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	r := []rune(err.Error())
	if len(r) > maxErrorText {
		return string(r[:maxErrorText])
	}
	return string(r)
}
