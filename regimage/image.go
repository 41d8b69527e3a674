package regimage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"

	"github.com/wnxd/microunwind/unwinder"
)

// BLOCK_SIZE is the target machine word. Images are laid out for the
// 32-bit target regardless of the host word size, so a 64-bit host can
// read and write 32-bit register images.
const BLOCK_SIZE = 4

type handler func(image []byte, ptr unsafe.Pointer)

type codec struct {
	size   int
	encode handler
	decode handler
}

var codecCache sync.Map

func Size(val any) int {
	typ := reflect.TypeOf(val)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return getCodec(typ).size
}

func Marshal(val any) []byte {
	typ := reflect.TypeOf(val)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	c := getCodec(typ)
	image := make([]byte, c.size)
	c.encode(image, getPtr(val))
	return image
}

func Unmarshal(image []byte, val any) error {
	typ := reflect.TypeOf(val)
	if typ.Kind() != reflect.Pointer {
		panic("regimage: unmarshal target must be a pointer")
	}
	c := getCodec(typ.Elem())
	if len(image) < c.size {
		return fmt.Errorf("%w: have %d, need %d", unwinder.ErrImageSize, len(image), c.size)
	}
	c.decode(image, getPtr(val))
	return nil
}

func getCodec(typ reflect.Type) *codec {
	key := getRType(typ)
	if v, ok := codecCache.Load(key); ok {
		return v.(*codec)
	}
	c := build(reflect2.Type2(typ))
	codecCache.Store(key, c)
	return c
}

func build(typ reflect2.Type) *codec {
	t := typ.Type1()
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32, reflect.Int64, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		size := int(t.Size())
		return &codec{
			size: size,
			encode: func(image []byte, ptr unsafe.Pointer) {
				copy(image, unsafe.Slice((*byte)(ptr), size))
			},
			decode: func(image []byte, ptr unsafe.Pointer) {
				copy(unsafe.Slice((*byte)(ptr), size), image)
			},
		}
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return wordCodec(int(t.Size()))
	case reflect.Array:
		elem := build(reflect2.Type2(t.Elem()))
		count := t.Len()
		stride := t.Elem().Size()
		return &codec{
			size: elem.size * count,
			encode: func(image []byte, ptr unsafe.Pointer) {
				for i := 0; i < count; i++ {
					elem.encode(image[i*elem.size:], unsafe.Add(ptr, uintptr(i)*stride))
				}
			},
			decode: func(image []byte, ptr unsafe.Pointer) {
				for i := 0; i < count; i++ {
					elem.decode(image[i*elem.size:], unsafe.Add(ptr, uintptr(i)*stride))
				}
			},
		}
	case reflect.Struct:
		return buildStruct(typ.(reflect2.StructType))
	}
	panic("regimage: unsupported type " + t.String())
}

// wordCodec narrows host words to target words: the low BLOCK_SIZE
// bytes travel, the rest zero-extends on decode.
func wordCodec(hostSize int) *codec {
	c := &codec{size: BLOCK_SIZE}
	if hostSize == BLOCK_SIZE {
		c.encode = func(image []byte, ptr unsafe.Pointer) {
			binary.LittleEndian.PutUint32(image, *(*uint32)(ptr))
		}
		c.decode = func(image []byte, ptr unsafe.Pointer) {
			*(*uint32)(ptr) = binary.LittleEndian.Uint32(image)
		}
		return c
	}
	c.encode = func(image []byte, ptr unsafe.Pointer) {
		binary.LittleEndian.PutUint32(image, uint32(*(*uint64)(ptr)))
	}
	c.decode = func(image []byte, ptr unsafe.Pointer) {
		*(*uint64)(ptr) = uint64(binary.LittleEndian.Uint32(image))
	}
	return c
}

type fieldData struct {
	codec    *codec
	imageOff int
	field    reflect2.StructField
}

func buildStruct(typ reflect2.StructType) *codec {
	t := typ.Type1()
	count := t.NumField()
	fields := make([]fieldData, 0, count)
	var size int
	for i := 0; i < count; i++ {
		field := typ.Field(i)
		if field.Tag().Get("regimage") == "ignore" {
			continue
		}
		fc := build(field.Type())
		off := unwinder.Align(size, min(fc.size, BLOCK_SIZE))
		fields = append(fields, fieldData{fc, off, field})
		size = off + fc.size
	}
	size = unwinder.Align(size, BLOCK_SIZE)
	return &codec{
		size: size,
		encode: func(image []byte, ptr unsafe.Pointer) {
			for _, f := range fields {
				f.codec.encode(image[f.imageOff:], f.field.UnsafeGet(ptr))
			}
		},
		decode: func(image []byte, ptr unsafe.Pointer) {
			for _, f := range fields {
				f.codec.decode(image[f.imageOff:], f.field.UnsafeGet(ptr))
			}
		},
	}
}

func getRType(typ reflect.Type) uintptr {
	return (*struct{ _, data uintptr })(unsafe.Pointer(&typ)).data
}

func getPtr(v any) unsafe.Pointer {
	return (*struct{ _, data unsafe.Pointer })(unsafe.Pointer(&v)).data
}
