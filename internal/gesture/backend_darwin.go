//go:build darwin && cgo

package gesture

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <dlfcn.h>
#include <stdint.h>

// The gesture-to-CGEvent constructor is present in the CoreGraphics dylib
// but absent from the public SDK headers. Load it dynamically.
typedef CGEventRef (*CGEventCreateFromGestureFunc)(CFDictionaryRef info, CFArrayRef touches);

static CGEventCreateFromGestureFunc getCGEventCreateFromGesture(void) {
    static CGEventCreateFromGestureFunc fn = NULL;
    if (!fn) {
        fn = (CGEventCreateFromGestureFunc)dlsym(RTLD_DEFAULT, "CGEventCreateFromGesture");
    }
    return fn;
}

uintptr_t buildGestureEvent(int subtype, int phase, double magnification) {
    CGEventCreateFromGestureFunc fn = getCGEventCreateFromGesture();
    if (!fn) {
        return 0;
    }

    CFNumberRef subtypeNum = CFNumberCreate(NULL, kCFNumberIntType, &subtype);
    CFNumberRef phaseNum = CFNumberCreate(NULL, kCFNumberIntType, &phase);
    CFNumberRef magNum = CFNumberCreate(NULL, kCFNumberDoubleType, &magnification);

    const void *keys[] = { CFSTR("gestureSubtype"), CFSTR("gesturePhase"), CFSTR("magnification") };
    const void *values[] = { subtypeNum, phaseNum, magNum };

    CFDictionaryRef info = CFDictionaryCreate(NULL, keys, values, 3,
        &kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);

    CFArrayRef touches = CFArrayCreate(NULL, NULL, 0, &kCFTypeArrayCallBacks);

    CGEventRef event = fn(info, touches);

    CFRelease(subtypeNum);
    CFRelease(phaseNum);
    CFRelease(magNum);
    CFRelease(info);
    CFRelease(touches);

    return (uintptr_t)event;
}

void postGestureEvent(uintptr_t event) {
    CGEventPost(kCGHIDEventTap, (CGEventRef)event);
}

void releaseGestureEvent(uintptr_t event) {
    CFRelease((CGEventRef)event);
}
*/
import "C"

// cgEvent wraps a CGEventRef owned by this process until Release.
type cgEvent uintptr

func (e cgEvent) Release() {
	C.releaseGestureEvent(C.uintptr_t(e))
}

// cgBackend builds and posts gesture events through CoreGraphics.
type cgBackend struct{}

func (cgBackend) FromGesture(info Descriptor, touches []Contact) Event {
	// Magnify gestures carry no contact points; the C side creates the
	// empty CFArray itself.
	_ = touches
	ref := C.buildGestureEvent(C.int(info.Subtype), C.int(info.Phase), C.double(info.Magnification))
	if ref == 0 {
		return nil
	}
	return cgEvent(ref)
}

func (cgBackend) Post(ev Event) {
	C.postGestureEvent(C.uintptr_t(ev.(cgEvent)))
}

func platformBackend() (Builder, Poster) {
	return cgBackend{}, cgBackend{}
}
