package segy

// TraceField describes one field of the 240-byte trace header. Offset is
// zero-based within the header, Size is 2 or 4, values are big-endian
// signed. Names follow the conventional SEG-Y revision 1 identifiers so the
// cached table columns match what downstream consumers expect.
type TraceField struct {
	Name   string
	Offset int
	Size   int
}

// TraceFields is the fixed catalogue of standard trace-header fields in
// byte order. The catalogue covers the full 240 bytes; informativeness
// filtering happens later, over scanned values, not here.
// Fields the geometry probe reads directly.
var (
	inlineField    = TraceField{"INLINE_3D", 188, 4}
	crosslineField = TraceField{"CROSSLINE_3D", 192, 4}
)

var TraceFields = []TraceField{
	{"TRACE_SEQUENCE_LINE", 0, 4},
	{"TRACE_SEQUENCE_FILE", 4, 4},
	{"FieldRecord", 8, 4},
	{"TraceNumber", 12, 4},
	{"EnergySourcePoint", 16, 4},
	{"CDP", 20, 4},
	{"CDP_TRACE", 24, 4},
	{"TraceIdentificationCode", 28, 2},
	{"NSummedTraces", 30, 2},
	{"NStackedTraces", 32, 2},
	{"DataUse", 34, 2},
	{"offset", 36, 4},
	{"ReceiverGroupElevation", 40, 4},
	{"SourceSurfaceElevation", 44, 4},
	{"SourceDepth", 48, 4},
	{"ReceiverDatumElevation", 52, 4},
	{"SourceDatumElevation", 56, 4},
	{"SourceWaterDepth", 60, 4},
	{"GroupWaterDepth", 64, 4},
	{"ElevationScalar", 68, 2},
	{"SourceGroupScalar", 70, 2},
	{"SourceX", 72, 4},
	{"SourceY", 76, 4},
	{"GroupX", 80, 4},
	{"GroupY", 84, 4},
	{"CoordinateUnits", 88, 2},
	{"WeatheringVelocity", 90, 2},
	{"SubWeatheringVelocity", 92, 2},
	{"SourceUpholeTime", 94, 2},
	{"GroupUpholeTime", 96, 2},
	{"SourceStaticCorrection", 98, 2},
	{"GroupStaticCorrection", 100, 2},
	{"TotalStaticApplied", 102, 2},
	{"LagTimeA", 104, 2},
	{"LagTimeB", 106, 2},
	{"DelayRecordingTime", 108, 2},
	{"MuteTimeStart", 110, 2},
	{"MuteTimeEND", 112, 2},
	{"TRACE_SAMPLE_COUNT", 114, 2},
	{"TRACE_SAMPLE_INTERVAL", 116, 2},
	{"GainType", 118, 2},
	{"InstrumentGainConstant", 120, 2},
	{"InstrumentInitialGain", 122, 2},
	{"Correlated", 124, 2},
	{"SweepFrequencyStart", 126, 2},
	{"SweepFrequencyEnd", 128, 2},
	{"SweepLength", 130, 2},
	{"SweepType", 132, 2},
	{"SweepTraceTaperLengthStart", 134, 2},
	{"SweepTraceTaperLengthEnd", 136, 2},
	{"TaperType", 138, 2},
	{"AliasFilterFrequency", 140, 2},
	{"AliasFilterSlope", 142, 2},
	{"NotchFilterFrequency", 144, 2},
	{"NotchFilterSlope", 146, 2},
	{"LowCutFrequency", 148, 2},
	{"HighCutFrequency", 150, 2},
	{"LowCutSlope", 152, 2},
	{"HighCutSlope", 154, 2},
	{"YearDataRecorded", 156, 2},
	{"DayOfYear", 158, 2},
	{"HourOfDay", 160, 2},
	{"MinuteOfHour", 162, 2},
	{"SecondOfMinute", 164, 2},
	{"TimeBaseCode", 166, 2},
	{"TraceWeightingFactor", 168, 2},
	{"GeophoneGroupNumberRoll1", 170, 2},
	{"GeophoneGroupNumberFirstTraceOrigField", 172, 2},
	{"GeophoneGroupNumberLastTraceOrigField", 174, 2},
	{"GapSize", 176, 2},
	{"OverTravel", 178, 2},
	{"CDP_X", 180, 4},
	{"CDP_Y", 184, 4},
	{"INLINE_3D", 188, 4},
	{"CROSSLINE_3D", 192, 4},
	{"ShotPoint", 196, 4},
	{"ShotPointScalar", 200, 2},
	{"TraceValueMeasurementUnit", 202, 2},
	{"TransductionConstantMantissa", 204, 4},
	{"TransductionConstantPower", 208, 2},
	{"TransductionUnit", 210, 2},
	{"TraceIdentifier", 212, 2},
	{"ScalarTraceHeader", 214, 2},
	{"SourceType", 216, 2},
	{"SourceEnergyDirectionMantissa", 218, 4},
	{"SourceEnergyDirectionExponent", 222, 2},
	{"SourceMeasurementMantissa", 224, 4},
	{"SourceMeasurementExponent", 228, 2},
	{"SourceMeasurementUnit", 230, 2},
	{"UnassignedInt1", 232, 4},
	{"UnassignedInt2", 236, 4},
}
