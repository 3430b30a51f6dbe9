package hooks

// RegisterBuiltins subscribes the notification hook and then auto-fulfilment.
// Handlers run in registration order, so the message of an event is queued
// before the messages of any change its business hooks make.
func RegisterBuiltins(bus *Bus, changer ShipmentStatusChanger) {
	NewNotificationHook().Register(bus)
	NewAutoFulfillmentHook(changer).Register(bus)
}
