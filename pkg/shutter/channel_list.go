package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// ChannelList mirrors the ShutterChannelList schema: the channel names a
// server exposes. Like every list field, shutter_list rides the
// non-empty predicate on the way out: an empty list never appears on the
// wire, even when explicitly set.
type ChannelList struct {
	shutterList wire.Field[[]string]
}

var _ wire.Model = (*ChannelList)(nil)

// NewChannelList returns an empty list with every field unset.
func NewChannelList() *ChannelList {
	return &ChannelList{}
}

// NewChannelListFromJSON builds a list and populates it from text.
func NewChannelListFromJSON(text string) *ChannelList {
	l := NewChannelList()
	l.FromJSON(text)
	return l
}

func (l *ChannelList) FromJSON(text string) {
	l.FromJSONObject(wire.Parse(text))
}

func (l *ChannelList) FromJSONObject(obj wire.JSONObject) {
	l.shutterList.Extract(obj, "shutter_list", wire.ListDecoder(wire.DecodeString))
}

func (l *ChannelList) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(l.shutterList.Get()) > 0 {
		obj["shutter_list"] = wire.EncodeStrings(l.shutterList.Get())
	}
	return obj
}

func (l *ChannelList) ToJSON() string {
	return wire.Compact(l.AsJSONObject())
}

// ShutterList returns a copy of the names; mutating it does not change
// what the list emits.
func (l *ChannelList) ShutterList() []string {
	return append([]string(nil), l.shutterList.Get()...)
}

func (l *ChannelList) SetShutterList(v []string) { l.shutterList.Set(v) }
func (l *ChannelList) ShutterListSet() bool      { return l.shutterList.IsSet() }
func (l *ChannelList) ShutterListValid() bool    { return l.shutterList.IsValid() }

func (l *ChannelList) IsSet() bool {
	return len(l.shutterList.Get()) > 0
}

func (l *ChannelList) IsValid() bool {
	return l.shutterList.IsValid()
}

func (l *ChannelList) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "shutter_list", Required: true, Set: l.shutterList.IsSet(), Valid: l.shutterList.IsValid()},
	}
}
