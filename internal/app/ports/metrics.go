package ports

import "petverse/internal/domain/pet"

type ActionMetrics interface {
	RecordSuccess(resultCode pet.ResultCode)
	RecordConflict()
	RecordFailure()
}
