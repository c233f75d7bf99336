package config

import "github.com/mohae/deepcopy"

// MockConfig snapshots Conf so tests can mutate it and restore the
// original afterwards.
type MockConfig struct {
	copy Config
}

var mockConfigInstance *MockConfig

func GetMockConfig() *MockConfig {
	if mockConfigInstance == nil {
		mockConfigInstance = new()
	}
	return mockConfigInstance
}

func new() *MockConfig {
	return &MockConfig{copy: deepcopy.Copy(*Conf).(Config)}
}

func (t *MockConfig) Reset() {
	restored := deepcopy.Copy(t.copy).(Config)
	Conf = &restored
}
