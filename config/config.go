package config

import (
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
	"github.com/spf13/viper"
)

var viperConfig = viper.New()

func GetViperInstance() *viper.Viper {
	return viperConfig
}

func GetSatelliteURL() string {
	return viperConfig.GetString(constant.CobraFlagSatelliteURL)
}

func VerifyCertificate() bool {
	return viperConfig.GetBool(constant.CobraFlagVerifyCertificate)
}

func GetSSLCA() string {
	return viperConfig.GetString(constant.CobraFlagSSLCA)
}

func GetSSLCert() string {
	return viperConfig.GetString(constant.CobraFlagSSLCert)
}

func GetSSLKey() string {
	return viperConfig.GetString(constant.CobraFlagSSLKey)
}

func ManageDefaultCACert() bool {
	return viperConfig.GetBool(constant.CobraFlagManageDefaultCACert)
}

func TrustedExternalCommand() bool {
	return viperConfig.GetBool(constant.CobraFlagTrustedExternalCmd)
}

func IsDebug() bool {
	return viperConfig.GetBool(constant.CobraFlagDebug)
}

func IsNoop() bool {
	return viperConfig.GetBool(constant.CobraFlagNoop)
}

func AssumeYes() bool {
	return viperConfig.GetBool(constant.CobraFlagAssumeYes)
}
