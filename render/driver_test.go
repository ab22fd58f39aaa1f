package render

import (
	"fmt"
	"time"

	"github.com/Stavrolet/ByteEngineD3D11/event"
)

type fakeTarget struct {
	width, height int
	mode          event.WindowMode
	modes         []event.WindowMode
}

func (t *fakeTarget) NativeHandle() uintptr {
	return 0x100
}

func (t *fakeTarget) Size() (int, int) {
	return t.width, t.height
}

func (t *fakeTarget) Mode() event.WindowMode {
	return t.mode
}

func (t *fakeTarget) SetWindowMode(m event.WindowMode) {
	t.mode = m
	t.modes = append(t.modes, m)
}

// fakeGPU is a scripted Driver. Each error queue is consumed one entry per
// call of the matching method; an empty queue means success.
type fakeGPU struct {
	target *fakeTarget
	calls  []string

	deviceErrs     []error
	swapChainErrs  []error
	viewErrs       []error
	presentErrs    []error
	resizeErrs     []error
	fullscreenErrs []error
	reason         error

	fullscreen bool
	devices    int
	live       int
}

func newFakeGPU(target *fakeTarget) *fakeGPU {
	return &fakeGPU{target: target}
}

func pop(q *[]error) error {
	if len(*q) == 0 {
		return nil
	}
	err := (*q)[0]
	*q = (*q)[1:]
	return err
}

func (g *fakeGPU) record(call string) {
	g.calls = append(g.calls, call)
}

func (g *fakeGPU) CreateDevice(debug bool) (Device, error) {
	g.record("CreateDevice")
	if err := pop(&g.deviceErrs); err != nil {
		return nil, err
	}
	g.devices++
	g.live++
	return &fakeDevice{gpu: g}, nil
}

type fakeDevice struct {
	gpu *fakeGPU
}

func (d *fakeDevice) EnableDebugLayer() error {
	d.gpu.record("EnableDebugLayer")
	return nil
}

func (d *fakeDevice) CreateSwapChain(hwnd uintptr, cfg SwapChainConfig) (SwapChain, error) {
	d.gpu.record("CreateSwapChain")
	if err := pop(&d.gpu.swapChainErrs); err != nil {
		return nil, err
	}
	d.gpu.live++
	d.gpu.fullscreen = false
	w, h := d.gpu.target.Size()
	return &fakeSwapChain{gpu: d.gpu, width: w, height: h}, nil
}

func (d *fakeDevice) CreateViews(sc SwapChain, width, height int) (Views, error) {
	d.gpu.record("CreateViews")
	if err := pop(&d.gpu.viewErrs); err != nil {
		return nil, err
	}
	s := sc.(*fakeSwapChain)
	d.gpu.live++
	return &fakeViews{gpu: d.gpu, width: s.width, height: s.height}, nil
}

func (d *fakeDevice) UnbindTargets() {
	d.gpu.record("UnbindTargets")
}

func (d *fakeDevice) Clear(v Views, color [4]float32) {
	d.gpu.record("Clear")
}

func (d *fakeDevice) RemovedReason() error {
	return d.gpu.reason
}

func (d *fakeDevice) Release() {
	d.gpu.live--
}

type fakeSwapChain struct {
	gpu           *fakeGPU
	width, height int
}

func (s *fakeSwapChain) Present(syncInterval int) error {
	s.gpu.record("Present")
	return pop(&s.gpu.presentErrs)
}

func (s *fakeSwapChain) ResizeBuffers() error {
	s.gpu.record("ResizeBuffers")
	if err := pop(&s.gpu.resizeErrs); err != nil {
		return err
	}
	s.width, s.height = s.gpu.target.Size()
	return nil
}

func (s *fakeSwapChain) Fullscreen() (bool, error) {
	return s.gpu.fullscreen, nil
}

func (s *fakeSwapChain) SetFullscreen(on bool) error {
	s.gpu.record(fmt.Sprintf("SetFullscreen(%t)", on))
	if err := pop(&s.gpu.fullscreenErrs); err != nil {
		return err
	}
	s.gpu.fullscreen = on
	return nil
}

func (s *fakeSwapChain) Release() {
	s.gpu.live--
}

type fakeViews struct {
	gpu           *fakeGPU
	width, height int
}

func (v *fakeViews) Size() (int, int) {
	return v.width, v.height
}

func (v *fakeViews) Release() {
	v.gpu.live--
}

type fakeReporter struct {
	fatals []string
	errs   []error
	alerts []string
}

func (r *fakeReporter) Fatal(message string, err error) { r.fatals = append(r.fatals, message) }
func (r *fakeReporter) Error(err error)                 { r.errs = append(r.errs, err) }
func (r *fakeReporter) Alert(message string)            { r.alerts = append(r.alerts, message) }

type sleepRecorder []time.Duration

func (s *sleepRecorder) sleep(d time.Duration) {
	*s = append(*s, d)
}
