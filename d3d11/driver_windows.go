package d3d11

import (
	"math"
	"syscall"
	"unsafe"

	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/render"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Driver creates hardware Direct3D 11.1 devices.
type Driver struct{}

var _ render.Driver = (*Driver)(nil)

func New() *Driver {
	return &Driver{}
}

func (d *Driver) CreateDevice(debugLayer bool) (render.Device, error) {
	if err := procD3D11CreateDevice.Find(); err != nil {
		return nil, errors.Wrap(err, "d3d11.dll is not available")
	}

	flags := uint32(createDeviceBGRA)
	if debugLayer {
		flags |= createDeviceDebug
	}
	levels := [...]uint32{featureLevel11_1, featureLevel11_0}

	var (
		base, baseCtx *comObject
		level         uint32
	)
	r, _, _ := syscall.SyscallN(procD3D11CreateDevice.Addr(),
		0,
		driverTypeHardware,
		0,
		uintptr(flags),
		uintptr(unsafe.Pointer(&levels[0])),
		uintptr(len(levels)),
		sdkVersion,
		uintptr(unsafe.Pointer(&base)),
		uintptr(unsafe.Pointer(&level)),
		uintptr(unsafe.Pointer(&baseCtx)),
	)
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "D3D11CreateDevice")
	}
	defer releaseAll(base, baseCtx)

	dev, err := base.queryInterface(&iidDevice1)
	if err != nil {
		return nil, errors.Wrap(err, "device does not support Direct3D 11.1")
	}
	ctx, err := baseCtx.queryInterface(&iidDeviceContext1)
	if err != nil {
		dev.release()
		return nil, errors.Wrap(err, "device context does not support Direct3D 11.1")
	}
	debug.Logger().Debug("direct3d device created", "featureLevel", level)
	return &device{dev: dev, ctx: ctx}, nil
}

type device struct {
	dev *comObject
	ctx *comObject
}

func (d *device) EnableDebugLayer() error {
	dbg, err := d.dev.queryInterface(&iidDebug)
	if err != nil {
		return errors.Wrap(err, "ID3D11Debug")
	}
	defer dbg.release()
	queue, err := dbg.queryInterface(&iidInfoQueue)
	if err != nil {
		return errors.Wrap(err, "ID3D11InfoQueue")
	}
	defer queue.release()

	for _, severity := range []uintptr{messageSeverityCorruption, messageSeverityError} {
		r, _, _ := syscall.SyscallN(queue.method(infoQueueSetBreakOnSeverity), uintptr(unsafe.Pointer(queue)), severity, 1)
		if err := check(r); err != nil {
			return errors.Wrap(err, "SetBreakOnSeverity")
		}
	}
	return nil
}

func (d *device) CreateSwapChain(hwnd uintptr, cfg render.SwapChainConfig) (render.SwapChain, error) {
	dxgiDevice, err := d.dev.queryInterface(&iidDXGIDevice1)
	if err != nil {
		return nil, errors.Wrap(err, "IDXGIDevice1")
	}
	defer dxgiDevice.release()

	var adapter *comObject
	r, _, _ := syscall.SyscallN(dxgiDevice.method(dxgiDeviceGetAdapter), uintptr(unsafe.Pointer(dxgiDevice)), uintptr(unsafe.Pointer(&adapter)))
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "GetAdapter")
	}
	defer adapter.release()
	adapter1, err := adapter.queryInterface(&iidDXGIAdapter1)
	if err != nil {
		return nil, errors.Wrap(err, "IDXGIAdapter1")
	}
	defer adapter1.release()
	logAdapter(adapter1)

	var factory *comObject
	r, _, _ = syscall.SyscallN(adapter1.method(dxgiObjectGetParent),
		uintptr(unsafe.Pointer(adapter1)), uintptr(unsafe.Pointer(&iidDXGIFactory2)), uintptr(unsafe.Pointer(&factory)))
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "IDXGIFactory2")
	}
	defer factory.release()

	closest := d.closestMode(adapter1, cfg.Mode)

	bufferCount := cfg.BufferCount
	if bufferCount < 2 {
		bufferCount = swapChainDefaultBufferCnt
	}
	desc := swapChainDesc1{
		Format:      formatB8G8R8A8Unorm,
		SampleDesc:  sampleDesc{Count: 1},
		BufferUsage: usageRenderTargetOutput,
		BufferCount: uint32(bufferCount),
		Scaling:     scalingNone,
		SwapEffect:  swapEffectFlipDiscard,
		AlphaMode:   alphaModeUnspecified,
		Flags:       swapChainAllowModeSwitch,
	}
	fullscreen := swapChainFullscreenDesc{
		RefreshRate:      closest.RefreshRate,
		ScanlineOrdering: modeScanlineUnspecified,
		Scaling:          modeScalingUnspecified,
		Windowed:         1,
	}
	var sc *comObject
	r, _, _ = syscall.SyscallN(factory.method(dxgiFactory2CreateSwapChainHW),
		uintptr(unsafe.Pointer(factory)),
		uintptr(unsafe.Pointer(d.dev)),
		hwnd,
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&fullscreen)),
		0,
		uintptr(unsafe.Pointer(&sc)),
	)
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "CreateSwapChainForHwnd")
	}

	r, _, _ = syscall.SyscallN(factory.method(dxgiFactoryMakeWindowAssoc),
		uintptr(unsafe.Pointer(factory)), hwnd, mwaNoAltEnter|mwaNoWindowChanges)
	if err := check(r); err != nil {
		debug.Logger().Debug("unable to set window association", "error", err)
	}

	return &swapChain{sc: sc, flags: desc.Flags}, nil
}

// closestMode asks the adapter's first output for the display mode closest
// to want. Failures only cost the refresh rate hint.
func (d *device) closestMode(adapter *comObject, want render.DisplayMode) modeDesc {
	var closest modeDesc

	var output *comObject
	r, _, _ := syscall.SyscallN(adapter.method(dxgiAdapterEnumOutputs), uintptr(unsafe.Pointer(adapter)), 0, uintptr(unsafe.Pointer(&output)))
	if err := check(r); err != nil {
		debug.Logger().Debug("unable to enumerate outputs", "error", err)
		return closest
	}
	defer output.release()

	target := modeDesc{
		Width:  uint32(want.Width),
		Height: uint32(want.Height),
		RefreshRate: rational{
			Numerator:   want.RefreshNumerator,
			Denominator: want.RefreshDenominator,
		},
		Format: formatB8G8R8A8Unorm,
	}
	r, _, _ = syscall.SyscallN(output.method(dxgiOutputFindClosestMode),
		uintptr(unsafe.Pointer(output)),
		uintptr(unsafe.Pointer(&target)),
		uintptr(unsafe.Pointer(&closest)),
		uintptr(unsafe.Pointer(d.dev)),
	)
	if err := check(r); err != nil {
		debug.Logger().Debug("unable to find closest display mode", "error", err)
		return modeDesc{}
	}
	debug.Logger().Debug("display mode", "width", closest.Width, "height", closest.Height,
		"refresh", float64(closest.RefreshRate.Numerator)/math.Max(1, float64(closest.RefreshRate.Denominator)))
	return closest
}

func logAdapter(adapter1 *comObject) {
	var desc adapterDesc1
	r, _, _ := syscall.SyscallN(adapter1.method(dxgiAdapter1GetDesc1), uintptr(unsafe.Pointer(adapter1)), uintptr(unsafe.Pointer(&desc)))
	if err := check(r); err != nil {
		debug.Logger().Debug("unable to describe adapter", "error", err)
		return
	}
	debug.Logger().Info("graphics device",
		"description", windows.UTF16ToString(desc.Description[:]),
		"vendor", desc.VendorID,
		"device", desc.DeviceID,
		"videoMemoryMiB", uint64(desc.DedicatedVideoMemory)>>20,
	)
}

func (d *device) CreateViews(sc render.SwapChain, width, height int) (render.Views, error) {
	chain, ok := sc.(*swapChain)
	if !ok {
		return nil, errors.Errorf("swap chain %T was not created by this driver", sc)
	}

	var backBuffer *comObject
	r, _, _ := syscall.SyscallN(chain.sc.method(swapChainGetBuffer),
		uintptr(unsafe.Pointer(chain.sc)), 0, uintptr(unsafe.Pointer(&iidTexture2D)), uintptr(unsafe.Pointer(&backBuffer)))
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "GetBuffer")
	}
	defer backBuffer.release()

	var rtv *comObject
	r, _, _ = syscall.SyscallN(d.dev.method(deviceCreateRenderTargetView),
		uintptr(unsafe.Pointer(d.dev)), uintptr(unsafe.Pointer(backBuffer)), 0, uintptr(unsafe.Pointer(&rtv)))
	if err := check(r); err != nil {
		return nil, errors.Wrap(err, "CreateRenderTargetView")
	}

	var desc textureDesc
	syscall.SyscallN(backBuffer.method(texture2DGetDesc), uintptr(unsafe.Pointer(backBuffer)), uintptr(unsafe.Pointer(&desc)))
	desc.Format = formatD24UnormS8
	desc.BindFlags = bindDepthStencil

	var depthBuffer *comObject
	r, _, _ = syscall.SyscallN(d.dev.method(deviceCreateTexture2D),
		uintptr(unsafe.Pointer(d.dev)), uintptr(unsafe.Pointer(&desc)), 0, uintptr(unsafe.Pointer(&depthBuffer)))
	if err := check(r); err != nil {
		rtv.release()
		return nil, errors.Wrap(err, "CreateTexture2D")
	}
	defer depthBuffer.release()

	var dsv *comObject
	r, _, _ = syscall.SyscallN(d.dev.method(deviceCreateDepthStencilView),
		uintptr(unsafe.Pointer(d.dev)), uintptr(unsafe.Pointer(depthBuffer)), 0, uintptr(unsafe.Pointer(&dsv)))
	if err := check(r); err != nil {
		rtv.release()
		return nil, errors.Wrap(err, "CreateDepthStencilView")
	}

	syscall.SyscallN(d.ctx.method(contextOMSetRenderTargets),
		uintptr(unsafe.Pointer(d.ctx)), 1, uintptr(unsafe.Pointer(&rtv)), uintptr(unsafe.Pointer(dsv)))
	vp := viewport{
		Width:    float32(width),
		Height:   float32(height),
		MaxDepth: 1,
	}
	syscall.SyscallN(d.ctx.method(contextRSSetViewports), uintptr(unsafe.Pointer(d.ctx)), 1, uintptr(unsafe.Pointer(&vp)))

	return &views{rtv: rtv, dsv: dsv, width: int(desc.Width), height: int(desc.Height)}, nil
}

func (d *device) UnbindTargets() {
	syscall.SyscallN(d.ctx.method(contextOMSetRenderTargets), uintptr(unsafe.Pointer(d.ctx)), 0, 0, 0)
}

func (d *device) Clear(v render.Views, color [4]float32) {
	vs, ok := v.(*views)
	if !ok {
		return
	}
	syscall.SyscallN(d.ctx.method(contextClearRenderTargetView),
		uintptr(unsafe.Pointer(d.ctx)), uintptr(unsafe.Pointer(vs.rtv)), uintptr(unsafe.Pointer(&color)))
	syscall.SyscallN(d.ctx.method(contextClearDepthStencilView),
		uintptr(unsafe.Pointer(d.ctx)), uintptr(unsafe.Pointer(vs.dsv)), clearDepth, uintptr(math.Float32bits(1)), 0)
}

func (d *device) RemovedReason() error {
	r, _, _ := syscall.SyscallN(d.dev.method(deviceGetDeviceRemovedReason), uintptr(unsafe.Pointer(d.dev)))
	return check(r)
}

func (d *device) Release() {
	releaseAll(d.ctx, d.dev)
	d.ctx, d.dev = nil, nil
}

type swapChain struct {
	sc    *comObject
	flags uint32
}

func (s *swapChain) Present(syncInterval int) error {
	r, _, _ := syscall.SyscallN(s.sc.method(swapChainPresent), uintptr(unsafe.Pointer(s.sc)), uintptr(syncInterval), 0)
	return checkStatus(r)
}

func (s *swapChain) ResizeBuffers() error {
	r, _, _ := syscall.SyscallN(s.sc.method(swapChainResizeBuffers),
		uintptr(unsafe.Pointer(s.sc)), 0, 0, 0, formatUnknown, uintptr(s.flags))
	return check(r)
}

func (s *swapChain) Fullscreen() (bool, error) {
	var state int32
	r, _, _ := syscall.SyscallN(s.sc.method(swapChainGetFullscreenState),
		uintptr(unsafe.Pointer(s.sc)), uintptr(unsafe.Pointer(&state)), 0)
	if err := check(r); err != nil {
		return false, err
	}
	return state != 0, nil
}

func (s *swapChain) SetFullscreen(on bool) error {
	r, _, _ := syscall.SyscallN(s.sc.method(swapChainSetFullscreenState), uintptr(unsafe.Pointer(s.sc)), boolArg(on), 0)
	return checkStatus(r)
}

func (s *swapChain) Release() {
	releaseAll(s.sc)
	s.sc = nil
}

type views struct {
	rtv, dsv      *comObject
	width, height int
}

func (v *views) Size() (int, int) {
	return v.width, v.height
}

func (v *views) Release() {
	releaseAll(v.dsv, v.rtv)
	v.dsv, v.rtv = nil, nil
}
