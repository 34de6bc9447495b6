package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// Specs describes the package's types under their OpenAPI component
// names. CommandResult is listed too even though it only travels over
// the WebSocket and has no REST schema entry.
func Specs() []wire.TypeSpec {
	return []wire.TypeSpec{
		{
			Name: "ServerStatusReport",
			Fields: []wire.FieldSpec{
				{Key: "status", Kind: wire.KindString, Required: true},
			},
		},
		{
			Name: "ShutterChannelList",
			Fields: []wire.FieldSpec{
				{Key: "shutter_list", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindString}},
			},
		},
		{
			Name: "ShutterChannelOperation",
			Fields: []wire.FieldSpec{
				{Key: "action", Kind: wire.KindEnum, Required: true, Ref: "ShutterAction", Enum: []string{ActionOn, ActionOff, ActionSwitch}},
			},
		},
		{
			Name: "ShutterStateReport",
			Fields: []wire.FieldSpec{
				{Key: "shutter_name", Kind: wire.KindString, Required: true},
				{Key: "state", Kind: wire.KindEnum, Required: true, Ref: "ShutterState", Enum: []string{StateOn, StateOff}},
			},
		},
		{
			Name: "ShutterCommandResult",
			Fields: []wire.FieldSpec{
				{Key: "result", Kind: wire.KindEnum, Required: true, Ref: "ShutterActionResult", Enum: actionResultTokens()},
				{Key: "id", Kind: wire.KindInteger},
			},
		},
	}
}
