// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/xr"
	"code.hybscloud.com/xr/xrsim"
)

func TestSetupResources(t *testing.T) {
	gl := xrsim.NewRecorder()
	var state xr.SessionState
	loop, err := xr.NewFrameLoop(gl, &state)
	if err != nil {
		t.Fatalf("NewFrameLoop: %v", err)
	}

	want := []string{
		xrsim.OpEnable, xrsim.OpEnable, xrsim.OpBufferData,
		xrsim.OpEnableAttrib, xrsim.OpAttribPointer,
		xrsim.OpEnableAttrib, xrsim.OpAttribPointer,
	}
	if got := ops(gl); !slices.Equal(got, want) {
		t.Fatalf("setup ops got %v, want %v", got, want)
	}

	calls := gl.Calls()
	if calls[0].Args[0] != xr.CapDepthTest || calls[1].Args[0] != xr.CapCullFace {
		t.Fatalf("enabled %v and %v, want depth test and face culling", calls[0].Args[0], calls[1].Args[0])
	}
	if data := calls[2].Args[0].([]float32); len(data) != 18 {
		t.Fatalf("uploaded %d floats, want 18", len(data))
	}
	// position: 3 floats at offset 0, color: 3 floats at offset 12, stride 24.
	pos, col := calls[4].Args, calls[6].Args
	if !slices.Equal(pos, []any{uint32(0), int32(3), int32(24), int32(0)}) {
		t.Fatalf("position pointer %v", pos)
	}
	if !slices.Equal(col, []any{uint32(1), int32(3), int32(24), int32(12)}) {
		t.Fatalf("color pointer %v", col)
	}

	res := loop.Resources()
	if res.Count != 3 {
		t.Fatalf("vertex count got %d, want 3", res.Count)
	}
	if res.Model == xr.NoUniform || res.View == xr.NoUniform || res.Projection == xr.NoUniform {
		t.Fatalf("unresolved uniforms: %+v", res)
	}
	if loop.Running() {
		t.Fatal("new loop is running")
	}
}

func TestSetupResolvesAttributesByName(t *testing.T) {
	gl := xrsim.NewRecorder()
	gl.Attribs = map[string]int32{"vertexPosition": 5, "vertexColor": 2}
	var state xr.SessionState
	if _, err := xr.NewFrameLoop(gl, &state); err != nil {
		t.Fatal(err)
	}

	var ptrs [][]any
	for _, c := range gl.Calls() {
		if c.Op == xrsim.OpAttribPointer {
			ptrs = append(ptrs, c.Args)
		}
	}
	if len(ptrs) != 2 {
		t.Fatalf("attribute pointers got %d, want 2", len(ptrs))
	}
	if ptrs[0][0] != uint32(5) || ptrs[0][3] != int32(0) {
		t.Fatalf("position bound as %v", ptrs[0])
	}
	if ptrs[1][0] != uint32(2) || ptrs[1][3] != int32(12) {
		t.Fatalf("color bound as %v", ptrs[1])
	}
}

func TestSetupMissingAttribute(t *testing.T) {
	gl := xrsim.NewRecorder()
	delete(gl.Attribs, "vertexColor")
	var state xr.SessionState
	if _, err := xr.NewFrameLoop(gl, &state); err != nil {
		t.Fatal(err)
	}
	if n := gl.Count(xrsim.OpAttribPointer); n != 1 {
		t.Fatalf("attribute pointers got %d, want 1", n)
	}
}

func TestShaderLinkFailure(t *testing.T) {
	h := newHarness(t)
	h.gl.CompileLogs = map[xr.ShaderStage]string{
		xr.StageFragment: "ERROR: 0:3: 'vColor' : undeclared identifier\nERROR: 1 compilation errors",
	}
	o, err := h.negotiate(t)
	if err != nil || o.Status != xr.StatusReady {
		t.Fatalf("negotiate: status %v, err %v", o.Status, err)
	}

	err = h.app.StartRendering()
	var serr *xr.ShaderError
	if !errors.As(err, &serr) {
		t.Fatalf("StartRendering got %v, want *ShaderError", err)
	}
	if len(serr.Stages) != 1 || serr.Stages[0].Stage != xr.StageFragment {
		t.Fatalf("failed stages %+v, want fragment only", serr.Stages)
	}
	if serr.LinkLog == "" {
		t.Fatal("link log missing")
	}
	msg := serr.Error()
	if strings.Contains(msg, "\n") || !strings.Contains(msg, "fragment compile failed: ERROR: 0:3:") {
		t.Fatalf("message %q", msg)
	}

	// Rendering continues degraded.
	if !h.app.Loop().Running() {
		t.Fatal("loop not running after shader failure")
	}
	h.gl.Reset()
	h.tick()
	if h.gl.Count(xrsim.OpClear) != 1 || h.gl.Count(xrsim.OpDrawArrays) != 2 {
		t.Fatalf("degraded tick ops %v", ops(h.gl))
	}
	res := h.app.Loop().Resources()
	if res.Model != xr.NoUniform {
		t.Fatalf("unlinked program resolved model uniform to %d", res.Model)
	}
}

func TestShaderLinkOnlyFailure(t *testing.T) {
	gl := xrsim.NewRecorder()
	gl.LinkLog = "error: vertex output vColor not read by fragment"
	var state xr.SessionState
	_, err := xr.NewFrameLoop(gl, &state)
	var serr *xr.ShaderError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *ShaderError", err)
	}
	if len(serr.Stages) != 0 {
		t.Fatalf("stages %+v, want none", serr.Stages)
	}
	if got, want := serr.Error(), "xr: program link failed: error: vertex output vColor not read by fragment"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
