package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindConfig, "configuration error"},
		{KindReply, "reply error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name       string
		args       []interface{}
		wantOp     Op
		wantKind   Kind
		wantErrMsg string
	}{
		{
			name:       "all arguments",
			args:       []interface{}{Op("pkg.Func"), KindNetwork, "context here", errors.New("boom")},
			wantOp:     "pkg.Func",
			wantKind:   KindNetwork,
			wantErrMsg: "boom",
		},
		{
			name:       "context only becomes error",
			args:       []interface{}{Op("pkg.Func"), KindInvalid, "bad input"},
			wantOp:     "pkg.Func",
			wantKind:   KindInvalid,
			wantErrMsg: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("E() did not return *Error")
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Err.Error() != tt.wantErrMsg {
				t.Errorf("Err = %q, want %q", e.Err.Error(), tt.wantErrMsg)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := E(Op("reply.HTTP"), KindNetwork, "request failed")

	if !Is(err, KindNetwork) {
		t.Error("Is() should match KindNetwork")
	}
	if Is(err, KindConfig) {
		t.Error("Is() should not match KindConfig")
	}
	if Is(errors.New("plain"), KindNetwork) {
		t.Error("Is() should not match a plain error")
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(KindReply, "bad reply")); got != KindReply {
		t.Errorf("GetKind() = %v, want KindReply", got)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind() = %v, want KindUnknown", got)
	}
}

func TestReplyStatus(t *testing.T) {
	err := ReplyStatus(503)
	if !Is(err, KindReply) {
		t.Error("ReplyStatus should produce KindReply")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("ReplyStatus error should contain the status code, got %q", err.Error())
	}
}

func TestConfigErrors(t *testing.T) {
	loadErr := ConfigLoadFailed("/tmp/config.json", errors.New("no such file"))
	if !Is(loadErr, KindConfig) {
		t.Error("ConfigLoadFailed should produce KindConfig")
	}
	if !strings.Contains(loadErr.Error(), "/tmp/config.json") {
		t.Errorf("ConfigLoadFailed should mention the path, got %q", loadErr.Error())
	}

	saveErr := ConfigSaveFailed("/tmp/config.json", errors.New("read-only"))
	if !Is(saveErr, KindConfig) {
		t.Error("ConfigSaveFailed should produce KindConfig")
	}
}
