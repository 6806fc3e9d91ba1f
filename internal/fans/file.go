package fans

import (
	"github.com/simplefan/fancontrol/internal/util"
)

// FileFan writes the speed as plain decimal text to a sysfs-style file, e.g. /sys/class/hwmon/hwmon0/pwm1.
// The file is opened and closed again for every write.
type FileFan struct {
	Path string `json:"path"`
	// Atomic replaces the file via rename instead of truncating it,
	// only usable for regular files.
	Atomic bool `json:"atomic"`
}

func (fan FileFan) GetId() string {
	return fan.Path
}

func (fan FileFan) GetPwm() (result int, err error) {
	integer, err := util.ReadIntFromFile(fan.Path)
	if err != nil {
		return MinPwmValue, err
	}
	return integer, nil
}

func (fan *FileFan) SetPwm(pwm int) (err error) {
	if fan.Atomic {
		return util.WriteIntToFileAtomic(pwm, fan.Path)
	}
	return util.WriteIntToFile(pwm, fan.Path)
}
