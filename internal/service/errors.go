package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned for an unknown username as well, so the
	// response does not reveal which accounts exist.
	ErrWrongPassword = errors.New("wrong username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnhealthy             = errors.New("service is unhealthy")

	ErrCannotDeleteSelf = errors.New("an admin cannot delete their own account")
	ErrAdminHasNoQuota  = errors.New("admin accounts have no search quota")
	ErrNotAnAdmin       = errors.New("account is not an admin")
)
