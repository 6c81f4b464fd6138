package backend

import (
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

// ErrNotFound matches any *Error whose upstream answered 404.
var ErrNotFound = errors.New("backend: not found")

// ErrSuperseded is returned by Latest when a newer request replaced the call.
var ErrSuperseded = errors.New("backend: superseded by a newer request")

// Kind classifies a failed backend call.
type Kind string

const (
	KindNetwork     Kind = "network"
	KindNotFound    Kind = "not_found"
	KindStatus      Kind = "status"
	KindDecode      Kind = "decode"
	KindUnavailable Kind = "unavailable"
	KindValidation  Kind = "validation"
)

// Error describes a failed call to the recruiting backend.
type Error struct {
	Op     string
	Status int
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend %s: %s (status %d)", e.Op, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("backend %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// KindOf returns the kind of a backend error, or "" for other errors.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func classifyBreakerErr(op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Op: op, Kind: KindUnavailable, Err: err}
	}
	return err
}

var opMessages = map[string]string{
	OpListCompanies:             "회사 목록을 불러오지 못했습니다.",
	OpCreateCompany:             "회사 등록에 실패했습니다.",
	OpListJobPostings:           "채용 공고 목록을 불러오지 못했습니다.",
	OpGetJobPosting:             "채용 공고를 불러오지 못했습니다.",
	OpCreateJobPosting:          "채용 공고 등록에 실패했습니다.",
	OpUpdateJobPosting:          "채용 공고 수정에 실패했습니다.",
	OpGetPublicJobPosting:       "채용 공고를 불러오지 못했습니다.",
	OpListApplications:          "지원서 목록을 불러오지 못했습니다.",
	OpListApplicationsByPosting: "지원서 목록을 불러오지 못했습니다.",
	OpSubmitApplication:         "지원서 제출에 실패했습니다.",
	OpGetApplicationDetails:     "지원서 정보를 불러오지 못했습니다.",
	OpUpdateEvaluation:          "평가 저장에 실패했습니다.",
	OpGetEvaluationResult:       "평가 결과를 불러오지 못했습니다.",
	OpListEvaluationResults:     "평가 결과 목록을 불러오지 못했습니다.",
}

const genericMessage = "데이터를 불러오는 중 오류가 발생했습니다."

// UserMessage converts a backend error into the message shown to reviewers.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var be *Error
	if !errors.As(err, &be) {
		return genericMessage
	}
	if be.Kind == KindNotFound {
		if be.Op == OpGetPublicJobPosting {
			return "존재하지 않는 채용 공고입니다."
		}
		return "요청한 정보를 찾을 수 없습니다."
	}
	if be.Kind == KindValidation {
		return "입력값을 확인해주세요."
	}
	if be.Kind == KindUnavailable {
		return "서버에 일시적으로 연결할 수 없습니다. 잠시 후 다시 시도해주세요."
	}
	if msg, ok := opMessages[be.Op]; ok {
		return msg
	}
	return genericMessage
}
