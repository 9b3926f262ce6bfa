package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownState — код федеральной земли вне закрытого списка.
var ErrUnknownState = errors.New("unknown federal state")

// State — двухбуквенный код федеральной земли Германии.
type State string

// Закрытый список земель в порядке, в котором их перечисляет ADAC.
const (
	StateBW State = "BW"
	StateBY State = "BY"
	StateBE State = "BE"
	StateBB State = "BB"
	StateHB State = "HB"
	StateHH State = "HH"
	StateHE State = "HE"
	StateMV State = "MV"
	StateNI State = "NI"
	StateNW State = "NW"
	StateRP State = "RP"
	StateSL State = "SL"
	StateSN State = "SN"
	StateST State = "ST"
	StateSH State = "SH"
	StateTH State = "TH"
)

var allStates = []State{
	StateBW, StateBY, StateBE, StateBB, StateHB, StateHH, StateHE, StateMV,
	StateNI, StateNW, StateRP, StateSL, StateSN, StateST, StateSH, StateTH,
}

var stateNames = map[State]string{
	StateBW: "Baden-Württemberg",
	StateBY: "Bayern",
	StateBE: "Berlin",
	StateBB: "Brandenburg",
	StateHB: "Bremen",
	StateHH: "Hamburg",
	StateHE: "Hessen",
	StateMV: "Mecklenburg-Vorpommern",
	StateNI: "Niedersachsen",
	StateNW: "Nordrhein-Westfalen",
	StateRP: "Rheinland-Pfalz",
	StateSL: "Saarland",
	StateSN: "Sachsen",
	StateST: "Sachsen-Anhalt",
	StateSH: "Schleswig-Holstein",
	StateTH: "Thüringen",
}

// States возвращает все 16 кодов в порядке объявления.
// Возвращается копия, вызывающий может её менять.
func States() []State {
	return append([]State(nil), allStates...)
}

// ParseState разбирает код земли без учёта регистра и пробелов по краям.
func ParseState(s string) (State, error) {
	st := State(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}

	return st, nil
}

// Valid сообщает, входит ли код в закрытый список.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// Name — отображаемое имя земли; для неизвестного кода возвращается сам код.
func (s State) Name() string {
	if n, ok := stateNames[s]; ok {
		return n
	}

	return string(s)
}

func (s State) String() string { return string(s) }
