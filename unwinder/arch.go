package unwinder

type Arch int

const (
	ARCH_UNKNOWN Arch = iota
	ARCH_ARM
)

type BackendCtor func() (Backend, error)

var backendMap = make(map[Arch]BackendCtor)

func Register(arch Arch, ctor BackendCtor) bool {
	if _, ok := backendMap[arch]; ok {
		return false
	}
	backendMap[arch] = ctor
	return true
}

func New(arch Arch) (Backend, error) {
	if ctor, ok := backendMap[arch]; ok {
		return ctor()
	}
	return nil, ErrArchUnsupported
}
