// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parallel runs a function over a slice with bounded concurrency.
//
// Every item is attempted unless the context is cancelled first; failures do not stop
// the other items. Errors from all items are collected into a *multierror.Error.
// No goroutine started by this package outlives the call that started it.
package parallel
