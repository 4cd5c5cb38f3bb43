package service

import (
	"fmt"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// EmployeeBadgePNG encodes the employee id as a QR code PNG for kiosk
// badges.
func EmployeeBadgePNG(employeeID int) ([]byte, error) {
	png, err := qrcode.Encode(strconv.Itoa(employeeID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encoding employee qr code: %w", err)
	}
	return png, nil
}
