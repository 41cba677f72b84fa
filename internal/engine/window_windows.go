//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// styleWindow switches the title bar to dark mode and paints the caption and
// border in the scene's clear color.
func styleWindow(window *glfw.Window, clear [3]float32) {
	win32 := window.GetWin32Window()
	if win32 == nil {
		return
	}
	hwnd := uintptr(unsafe.Pointer(win32))

	var useDarkMode int32 = 1
	setWindowAttribute(hwnd, DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&useDarkMode), unsafe.Sizeof(useDarkMode))

	colorBGR := colorRef(clear)
	setWindowAttribute(hwnd, DWMWA_BORDER_COLOR, unsafe.Pointer(&colorBGR), unsafe.Sizeof(colorBGR))
	setWindowAttribute(hwnd, DWMWA_CAPTION_COLOR, unsafe.Pointer(&colorBGR), unsafe.Sizeof(colorBGR))
}

func setWindowAttribute(hwnd uintptr, attr uintptr, value unsafe.Pointer, size uintptr) {
	procDwmSetWindowAttribute.Call(hwnd, attr, uintptr(value), size)
}
