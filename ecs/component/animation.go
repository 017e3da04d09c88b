package component

const (
	AnimParamSpeed    = "Speed"
	AnimParamGrounded = "Grounded"
)

// Animator receives named parameters from gameplay systems and exposes the
// clip the AnimationSystem resolved from them.
type Animator struct {
	Floats map[string]float64
	Bools  map[string]bool

	Current  string
	Previous string
}

func NewAnimator() *Animator {
	return &Animator{Floats: map[string]float64{}, Bools: map[string]bool{}, Current: "idle"}
}

// SetParameter stores a float or bool parameter; other types are ignored.
func (a *Animator) SetParameter(name string, value any) {
	if a == nil {
		return
	}
	switch v := value.(type) {
	case float64:
		if a.Floats == nil {
			a.Floats = map[string]float64{}
		}
		a.Floats[name] = v
	case bool:
		if a.Bools == nil {
			a.Bools = map[string]bool{}
		}
		a.Bools[name] = v
	}
}

var AnimatorComponent = NewComponent[Animator]()
