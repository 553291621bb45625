package core

// One handle type exists per electrical mode, so an operation that is
// illegal for a mode simply does not exist on its type. Every transition
// consumes the old handle by value and returns a handle of the new type; the
// register writes it performs leave the registers in exact agreement with
// the returned type's tag. The old value must not be used again.

// FloatingInput is an input pin with no pull resistor. This is the hardware
// reset state and the tag every handle starts with after Split.
type FloatingInput struct{ pin }

// PullUpInput is an input pin with the internal pull-up enabled.
type PullUpInput struct{ pin }

// PullDownInput is an input pin with the internal pull-down enabled.
type PullDownInput struct{ pin }

// PushPullOutput is an output pin actively driving both levels.
type PushPullOutput struct{ pin }

// OpenDrainOutput is an output pin that only sinks; the high level needs a
// pull-up somewhere.
type OpenDrainOutput struct{ pin }

// AnalogPin is handed over to the analog peripherals. It has no digital I/O
// operations at all, only transitions back out.
type AnalogPin struct{ pin }

// AltFuncPin is routed to another peripheral (UART, timer, ...). Like
// AnalogPin it only supports transitions back out of alternate mode.
type AltFuncPin struct{ pin }

// FloatingInput transitions.

func (p FloatingInput) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p FloatingInput) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p FloatingInput) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p FloatingInput) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p FloatingInput) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p FloatingInput) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p FloatingInput) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p FloatingInput) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// PullUpInput transitions.

func (p PullUpInput) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p PullUpInput) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p PullUpInput) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p PullUpInput) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p PullUpInput) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p PullUpInput) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p PullUpInput) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p PullUpInput) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// PullDownInput transitions.

func (p PullDownInput) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p PullDownInput) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p PullDownInput) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p PullDownInput) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p PullDownInput) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p PullDownInput) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p PullDownInput) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p PullDownInput) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// PushPullOutput transitions.

func (p PushPullOutput) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p PushPullOutput) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p PushPullOutput) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p PushPullOutput) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p PushPullOutput) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p PushPullOutput) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p PushPullOutput) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p PushPullOutput) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// OpenDrainOutput transitions.

func (p OpenDrainOutput) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p OpenDrainOutput) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p OpenDrainOutput) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p OpenDrainOutput) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p OpenDrainOutput) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p OpenDrainOutput) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p OpenDrainOutput) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p OpenDrainOutput) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// AnalogPin transitions.

func (p AnalogPin) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p AnalogPin) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p AnalogPin) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p AnalogPin) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p AnalogPin) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p AnalogPin) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p AnalogPin) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p AnalogPin) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// TriStatePin transitions.

func (p TriStatePin) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p TriStatePin) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p TriStatePin) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p TriStatePin) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p TriStatePin) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p TriStatePin) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p TriStatePin) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p TriStatePin) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}

// AltFuncPin transitions.

func (p AltFuncPin) IntoFloatingInput() FloatingInput {
	return FloatingInput{p.intoInput(pullNone)}
}

func (p AltFuncPin) IntoPullUpInput() PullUpInput {
	return PullUpInput{p.intoInput(pullUp)}
}

func (p AltFuncPin) IntoPullDownInput() PullDownInput {
	return PullDownInput{p.intoInput(pullDown)}
}

func (p AltFuncPin) IntoAnalog() AnalogPin {
	return AnalogPin{p.intoAnalog()}
}

func (p AltFuncPin) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{p.intoOutput(typePushPull)}
}

func (p AltFuncPin) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{p.intoOutput(typeOpenDrain)}
}

func (p AltFuncPin) IntoTriState() TriStatePin {
	return TriStatePin{p.intoTriState()}
}

func (p AltFuncPin) IntoAltFunc(af AltFunc) AltFuncPin {
	return AltFuncPin{p.intoAltFunc(af)}
}
