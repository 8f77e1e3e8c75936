// ardubusctl is the operator CLI for poking I2C peripherals behind an
// ArduBridge: read and write registers, scan the bus, set the bus clock.
package main

func main() {
	Execute()
}
