// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorts

import "errors"

// Error categories. Every error returned by this package matches one or
// both of these with errors.Is.
var (
	ErrInvalidArgument = errors.New("sorts: invalid argument")
	ErrDomainLimit     = errors.New("sorts: value outside supported domain")
)

// Specific errors. Each also matches its category.
var (
	ErrEmptyInput         = &kindError{"sorts: empty input", []error{ErrInvalidArgument}}
	ErrInvalidBucketCount = &kindError{"sorts: bucket count must be positive", []error{ErrInvalidArgument}}
	ErrNegativeValue      = &kindError{"sorts: negative value", []error{ErrDomainLimit, ErrInvalidArgument}}
)

// kindError is a sentinel that belongs to one or more categories.
type kindError struct {
	msg   string
	kinds []error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() []error { return e.kinds }
