package s3

import (
	"errors"
	"fmt"
)

// StorageOperation は失敗したバケット操作の種別。
type StorageOperation string

const (
	OperationPut    StorageOperation = "put"
	OperationGet    StorageOperation = "get"
	OperationDelete StorageOperation = "delete"
	OperationList   StorageOperation = "list"
	OperationHead   StorageOperation = "head"
)

// StorageError はリポジトリ設定の読み書き中に発生したS3操作の失敗を表す。
type StorageError struct {
	Operation StorageOperation
	Err       error
}

func NewStorageError(operation StorageOperation, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is は同じ操作種別のStorageError同士を等価とみなす。
func (e *StorageError) Is(target error) bool {
	var t *StorageError
	if errors.As(target, &t) {
		return e.Operation == t.Operation
	}
	return false
}

func IsStorageError(err error) bool {
	if err == nil {
		return false
	}
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
