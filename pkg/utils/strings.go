package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	return leftPad(strconv.FormatUint(value&AllOnes[uint64](bits), 2), bits)
}

// Formats an uint value into a fixed width lowercase hex string of n digits, without prefix
func FormatUintHex(value uint64, digits int) string {
	return leftPad(strconv.FormatUint(value&AllOnes[uint64](digits*4), 16), digits)
}

// Same as FormatUintHex() but with a leading '0x'
func FormatUintHexPrefixed(value uint64, digits int) string {
	return "0x" + FormatUintHex(value, digits)
}

func leftPad(text string, width int) string {
	if len(text) >= width {
		return text
	}

	return strings.Repeat("0", width-len(text)) + text
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}
