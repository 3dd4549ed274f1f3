// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// ProtocolError describes a well-formed byte stream that violates the
// wire format: a short read, a bad field value, or an unsupported
// protocol version. Message.Parse returns this error to its caller, who
// decides whether to disconnect the peer.
type ProtocolError struct {
	Op  string
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("wire: protocol error in %s: %s", e.Op, e.Msg)
}

func newParseError(op, msg string) *ProtocolError {
	return &ProtocolError{Op: op, Msg: msg}
}

// EnvelopeError describes a framing failure: magic mismatch, a declared
// payload length exceeding the configured cap, or a checksum mismatch.
// The offending command name is preserved for logging.
type EnvelopeError struct {
	Command string
	Msg     string
}

func (e *EnvelopeError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("wire: envelope error: %s", e.Msg)
	}
	return fmt.Sprintf("wire: envelope error [%s]: %s", e.Command, e.Msg)
}

func newEnvelopeError(command, msg string) *EnvelopeError {
	return &EnvelopeError{Command: command, Msg: msg}
}

// IOError wraps a failure from the underlying byte source or sink that is
// independent of message content.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("wire: io error in %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

// InternalError indicates a host invariant failed, such as the local
// platform rejecting a 16-byte address the wire format guarantees is
// well-formed. It is not expected to be recoverable and is fatal to the
// task that encountered it.
type InternalError struct {
	Op  string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("wire: internal error in %s: %s", e.Op, e.Msg)
}

func newInternalError(op, msg string) *InternalError {
	return &InternalError{Op: op, Msg: msg}
}
