// Package service wires the per-feature pipelines: normalize input, compute
// baselines, build the prompt, call the completion endpoint, post-process
// and store the result. Each service exclusively owns its feature's state
// container inside a session bundle.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/render"
	"github.com/priyansh/carmitra/internal/session"
)

// run executes the shared tail of every pipeline. Validation must already
// have passed: from here every failure is recorded in the state container
// as a bracketed error string, never propagated.
func run(ctx context.Context, provider llm.Provider, st *session.FeatureState, msgs []model.ChatMessage, decorate func(*session.Result)) session.Result {
	st.Begin()

	text, err := provider.Complete(ctx, msgs)
	if err != nil {
		slog.Error("completion failed", "error", err)
		st.Fail(fmt.Sprintf("[Error: %v]", err))
		return st.Snapshot()
	}

	r := session.Result{
		Raw:      text,
		Markdown: render.ColorizeMarkdown(text),
	}
	if decorate != nil {
		decorate(&r)
	}
	st.Succeed(r)
	return st.Snapshot()
}

// splitLines turns a multiline free-text field into trimmed, non-empty
// lines, preserving order.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
