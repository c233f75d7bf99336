package stats

import (
	"testing"
	"time"
)

func TestStartReporter(t *testing.T) {
	type args struct {
		seconds int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "report every second",
			args:    args{seconds: 1},
			wantErr: false,
		},
		{
			name:    "zero interval rejected",
			args:    args{seconds: 0},
			wantErr: true,
		},
		{
			name:    "negative interval rejected",
			args:    args{seconds: -3},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounters()
			c.Record(7)
			rep, err := StartReporter("sent", c, tt.args.seconds)
			if (err != nil) != tt.wantErr {
				t.Errorf("StartReporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			time.Sleep(1200 * time.Millisecond)
			rep.Stop()
		})
	}
}
