package d3d11

import (
	"syscall"
	"unsafe"

	"github.com/Stavrolet/ByteEngineD3D11/render"
	"golang.org/x/sys/windows"
)

var (
	d3d11DLL              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = d3d11DLL.NewProc("D3D11CreateDevice")
)

// comObject is any COM interface pointer. Methods are addressed by their
// vtable slot.
type comObject struct {
	vtbl *[64]uintptr
}

// IUnknown
const (
	methodQueryInterface = 0
	methodRelease        = 2
)

func (o *comObject) method(slot int) uintptr {
	return o.vtbl[slot]
}

func (o *comObject) release() {
	syscall.SyscallN(o.method(methodRelease), uintptr(unsafe.Pointer(o)))
}

func (o *comObject) queryInterface(iid *windows.GUID) (*comObject, error) {
	var out *comObject
	r, _, _ := syscall.SyscallN(o.method(methodQueryInterface),
		uintptr(unsafe.Pointer(o)), uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out)))
	if err := check(r); err != nil {
		return nil, err
	}
	return out, nil
}

func releaseAll(objs ...*comObject) {
	for _, o := range objs {
		if o != nil {
			o.release()
		}
	}
}

// check turns a failed HRESULT into an error.
func check(r uintptr) error {
	if int32(uint32(r)) < 0 {
		return render.HResult(uint32(r))
	}
	return nil
}

// checkStatus also reports success codes other than S_OK, such as
// DXGI_STATUS_OCCLUDED.
func checkStatus(r uintptr) error {
	if uint32(r) != 0 {
		return render.HResult(uint32(r))
	}
	return nil
}

func mustGUID(s string) windows.GUID {
	g, err := windows.GUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return g
}

var (
	iidDevice1        = mustGUID("{a04bfb29-08ef-43d6-a49c-a9bdbdcbe686}")
	iidDeviceContext1 = mustGUID("{bb2c6faa-b5fb-4082-8e6b-388b8cfa90e1}")
	iidDebug          = mustGUID("{79cf2233-7536-4948-9d36-1e4692dc5760}")
	iidInfoQueue      = mustGUID("{6543dbb6-1b48-42f5-ab82-e97ec74326f6}")
	iidTexture2D      = mustGUID("{6f15aaf2-d208-4e89-9ab4-489535d34f9c}")
	iidDXGIDevice1    = mustGUID("{77db970f-6276-48ba-ba28-070143b4392c}")
	iidDXGIAdapter1   = mustGUID("{29038f61-3839-4626-91fd-086879011a05}")
	iidDXGIFactory2   = mustGUID("{50c83a1c-e072-4c48-87b0-3630fa36a6d0}")
)

// Vtable slots, counted from IUnknown.
const (
	deviceCreateTexture2D         = 5
	deviceCreateRenderTargetView  = 9
	deviceCreateDepthStencilView  = 10
	deviceGetDeviceRemovedReason  = 39
	contextOMSetRenderTargets     = 33
	contextRSSetViewports         = 44
	contextClearRenderTargetView  = 50
	contextClearDepthStencilView  = 53
	texture2DGetDesc              = 10
	infoQueueSetBreakOnSeverity   = 31
	dxgiObjectGetParent           = 6
	dxgiDeviceGetAdapter          = 7
	dxgiAdapterEnumOutputs        = 7
	dxgiAdapter1GetDesc1          = 10
	dxgiOutputFindClosestMode     = 9
	dxgiFactoryMakeWindowAssoc    = 8
	dxgiFactory2CreateSwapChainHW = 15
	swapChainPresent              = 8
	swapChainGetBuffer            = 9
	swapChainSetFullscreenState   = 10
	swapChainGetFullscreenState   = 11
	swapChainResizeBuffers        = 13
)

const (
	driverTypeHardware = 1
	createDeviceDebug  = 0x2
	createDeviceBGRA   = 0x20
	featureLevel11_0   = 0xb000
	featureLevel11_1   = 0xb100
	sdkVersion         = 7

	formatUnknown       = 0
	formatD24UnormS8    = 45
	formatB8G8R8A8Unorm = 87

	bindDepthStencil = 0x40
	clearDepth       = 0x1

	messageSeverityCorruption = 0
	messageSeverityError      = 1

	usageRenderTargetOutput   = 0x20
	scalingNone               = 1
	swapEffectFlipDiscard     = 4
	alphaModeUnspecified      = 0
	swapChainAllowModeSwitch  = 0x2
	mwaNoWindowChanges        = 0x1
	mwaNoAltEnter             = 0x2
	modeScanlineUnspecified   = 0
	modeScalingUnspecified    = 0
	swapChainDefaultBufferCnt = 2
)

type sampleDesc struct {
	Count   uint32
	Quality uint32
}

type rational struct {
	Numerator   uint32
	Denominator uint32
}

type textureDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     sampleDesc
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type modeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      rational
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type swapChainDesc1 struct {
	Width       uint32
	Height      uint32
	Format      uint32
	Stereo      int32
	SampleDesc  sampleDesc
	BufferUsage uint32
	BufferCount uint32
	Scaling     uint32
	SwapEffect  uint32
	AlphaMode   uint32
	Flags       uint32
}

type swapChainFullscreenDesc struct {
	RefreshRate      rational
	ScanlineOrdering uint32
	Scaling          uint32
	Windowed         int32
}

type luid struct {
	LowPart  uint32
	HighPart int32
}

type adapterDesc1 struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           luid
	Flags                 uint32
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}
