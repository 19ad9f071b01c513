package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrNoEmployeesRegistered = errors.New("no employees registered")
)
