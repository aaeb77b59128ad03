package bindgen

// DefaultBlockedFunctions lists functions excluded from generation.
// qemu_plugin_install is the plugin's own entry point; the consumer
// defines it, bindings must not.
var DefaultBlockedFunctions = []string{
	"qemu_plugin_install",
}

// DefaultBlockedItems lists items excluded from generation.
// qemu_plugin_version is consumer-defined like the install entry point;
// everything after it is platform and standard-library noise the
// preprocessed header would otherwise pull into the bindings. This is
// configuration data, not logic.
var DefaultBlockedItems = []string{
	"qemu_plugin_version",
	"_INTTYPES_H",
	"_FEATURES_H",
	"_DEFAULT_SOURCE",
	"__GLIBC_USE_ISOC2X",
	"__USE_ISOC11",
	"__USE_ISOC99",
	"__USE_ISOC95",
	"__USE_POSIX_IMPLICITLY",
	"_POSIX_SOURCE",
	"_POSIX_C_SOURCE",
	"__USE_POSIX",
	"__USE_POSIX2",
	"__USE_POSIX199309",
	"__USE_POSIX199506",
	"__USE_XOPEN2K",
	"__USE_XOPEN2K8",
	"_ATFILE_SOURCE",
	"__WORDSIZE",
	"__WORDSIZE_TIME64_COMPAT32",
	"__TIMESIZE",
	"__USE_MISC",
	"__USE_ATFILE",
	"__USE_FORTIFY_LEVEL",
	"__GLIBC_USE_DEPRECATED_GETS",
	"__GLIBC_USE_DEPRECATED_SCANF",
	"__GLIBC_USE_C2X_STRTOL",
	"_STDC_PREDEF_H",
	"__STDC_IEC_559__",
	"__STDC_IEC_60559_BFP__",
	"__STDC_IEC_559_COMPLEX__",
	"__STDC_IEC_60559_COMPLEX__",
	"__STDC_ISO_10646__",
	"__GNU_LIBRARY__",
	"__GLIBC__",
	"__GLIBC_MINOR__",
	"_SYS_CDEFS_H",
	"__glibc_c99_flexarr_available",
	"__LDOUBLE_REDIRECTS_TO_FLOAT128_ABI",
	"__HAVE_GENERIC_SELECTION",
	"_STDINT_H",
	"__GLIBC_USE_LIB_EXT2",
	"__GLIBC_USE_IEC_60559_BFP_EXT",
	"__GLIBC_USE_IEC_60559_BFP_EXT_C2X",
	"__GLIBC_USE_IEC_60559_EXT",
	"__GLIBC_USE_IEC_60559_FUNCS_EXT",
	"__GLIBC_USE_IEC_60559_FUNCS_EXT_C2X",
	"__GLIBC_USE_IEC_60559_TYPES_EXT",
	"_BITS_TYPES_H",
	"_BITS_TYPESIZES_H",
	"__OFF_T_MATCHES_OFF64_T",
	"__INO_T_MATCHES_INO64_T",
	"__RLIM_T_MATCHES_RLIM64_T",
	"__STATFS_MATCHES_STATFS64",
	"__FD_SETSIZE",
	"_BITS_TIME64_H",
	"_BITS_WCHAR_H",
	"_BITS_STDINT_INTN_H",
	"_BITS_STDINT_UINTN_H",
	"INT8_MIN",
	"INT16_MIN",
	"INT32_MIN",
	"INT8_MAX",
	"INT16_MAX",
	"INT32_MAX",
	"UINT8_MAX",
	"UINT16_MAX",
	"UINT32_MAX",
	"INT_LEAST8_MIN",
	"INT_LEAST16_MIN",
	"INT_LEAST32_MIN",
	"INT_LEAST8_MAX",
	"INT_LEAST16_MAX",
	"INT_LEAST32_MAX",
	"UINT_LEAST8_MAX",
	"UINT_LEAST16_MAX",
	"UINT_LEAST32_MAX",
	"INT_FAST8_MIN",
	"INT_FAST16_MIN",
	"INT_FAST32_MIN",
	"INT_FAST8_MAX",
	"INT_FAST16_MAX",
	"INT_FAST32_MAX",
	"UINT_FAST8_MAX",
	"UINT_FAST16_MAX",
	"UINT_FAST32_MAX",
	"INTPTR_MIN",
	"INTPTR_MAX",
	"UINTPTR_MAX",
	"PTRDIFF_MIN",
	"PTRDIFF_MAX",
	"SIG_ATOMIC_MIN",
	"SIG_ATOMIC_MAX",
	"SIZE_MAX",
	"WINT_MIN",
	"WINT_MAX",
	"____gwchar_t_defined",
	"__PRI64_PREFIX",
	"__PRIPTR_PREFIX",
	"PRId8",
	"PRId16",
	"PRId32",
	"PRId64",
	"PRIdLEAST8",
	"PRIdLEAST16",
	"PRIdLEAST32",
	"PRIdLEAST64",
	"PRIdFAST8",
	"PRIdFAST16",
	"PRIdFAST32",
	"PRIdFAST64",
	"PRIi8",
	"PRIi16",
	"PRIi32",
	"PRIi64",
	"PRIiLEAST8",
	"PRIiLEAST16",
	"PRIiLEAST32",
	"PRIiLEAST64",
	"PRIiFAST8",
	"PRIiFAST16",
	"PRIiFAST32",
	"PRIiFAST64",
	"PRIo8",
	"PRIo16",
	"PRIo32",
	"PRIo64",
	"PRIoLEAST8",
	"PRIoLEAST16",
	"PRIoLEAST32",
	"PRIoLEAST64",
	"PRIoFAST8",
	"PRIoFAST16",
	"PRIoFAST32",
	"PRIoFAST64",
	"PRIu8",
	"PRIu16",
	"PRIu32",
	"PRIu64",
	"PRIuLEAST8",
	"PRIuLEAST16",
	"PRIuLEAST32",
	"PRIuLEAST64",
	"PRIuFAST8",
	"PRIuFAST16",
	"PRIuFAST32",
	"PRIuFAST64",
	"PRIx8",
	"PRIx16",
	"PRIx32",
	"PRIx64",
	"PRIxLEAST8",
	"PRIxLEAST16",
	"PRIxLEAST32",
	"PRIxLEAST64",
	"PRIxFAST8",
	"PRIxFAST16",
	"PRIxFAST32",
	"PRIxFAST64",
	"PRIX8",
	"PRIX16",
	"PRIX32",
	"PRIX64",
	"PRIXLEAST8",
	"PRIXLEAST16",
	"PRIXLEAST32",
	"PRIXLEAST64",
	"PRIXFAST8",
	"PRIXFAST16",
	"PRIXFAST32",
	"PRIXFAST64",
	"PRIdMAX",
	"PRIiMAX",
	"PRIoMAX",
	"PRIuMAX",
	"PRIxMAX",
	"PRIXMAX",
	"PRIdPTR",
	"PRIiPTR",
	"PRIoPTR",
	"PRIuPTR",
	"PRIxPTR",
	"PRIXPTR",
	"SCNd8",
	"SCNd16",
	"SCNd32",
	"SCNd64",
	"SCNdLEAST8",
	"SCNdLEAST16",
	"SCNdLEAST32",
	"SCNdLEAST64",
	"SCNdFAST8",
	"SCNdFAST16",
	"SCNdFAST32",
	"SCNdFAST64",
	"SCNi8",
	"SCNi16",
	"SCNi32",
	"SCNi64",
	"SCNiLEAST8",
	"SCNiLEAST16",
	"SCNiLEAST32",
	"SCNiLEAST64",
	"SCNiFAST8",
	"SCNiFAST16",
	"SCNiFAST32",
	"SCNiFAST64",
	"SCNu8",
	"SCNu16",
	"SCNu32",
	"SCNu64",
	"SCNuLEAST8",
	"SCNuLEAST16",
	"SCNuLEAST32",
	"SCNuLEAST64",
	"SCNuFAST8",
	"SCNuFAST16",
	"SCNuFAST32",
	"SCNuFAST64",
	"SCNo8",
	"SCNo16",
	"SCNo32",
	"SCNo64",
	"SCNoLEAST8",
	"SCNoLEAST16",
	"SCNoLEAST32",
	"SCNoLEAST64",
	"SCNoFAST8",
	"SCNoFAST16",
	"SCNoFAST32",
	"SCNoFAST64",
	"SCNx8",
	"SCNx16",
	"SCNx32",
	"SCNx64",
	"SCNxLEAST8",
	"SCNxLEAST16",
	"SCNxLEAST32",
	"SCNxLEAST64",
	"SCNxFAST8",
	"SCNxFAST16",
	"SCNxFAST32",
	"SCNxFAST64",
	"SCNdMAX",
	"SCNiMAX",
	"SCNoMAX",
	"SCNuMAX",
	"SCNxMAX",
	"SCNdPTR",
	"SCNiPTR",
	"SCNoPTR",
	"SCNuPTR",
	"SCNxPTR",
	"__bool_true_false_are_defined",
	"true_",
	"false_",
	"__u_char",
	"__u_short",
	"__u_int",
	"__u_long",
	"__int8_t",
	"__uint8_t",
	"__int16_t",
	"__uint16_t",
	"__int32_t",
	"__uint32_t",
	"__int64_t",
	"__uint64_t",
	"__int_least8_t",
	"__uint_least8_t",
	"__int_least16_t",
	"__uint_least16_t",
	"__int_least32_t",
	"__uint_least32_t",
	"__int_least64_t",
	"__uint_least64_t",
	"__quad_t",
	"__u_quad_t",
	"__intmax_t",
	"__uintmax_t",
	"__dev_t",
	"__uid_t",
	"__gid_t",
	"__ino_t",
	"__ino64_t",
	"__mode_t",
	"__nlink_t",
	"__off_t",
	"__off64_t",
	"__pid_t",
	"__fsid_t",
	"__clock_t",
	"__rlim_t",
	"__rlim64_t",
	"__id_t",
	"__time_t",
	"__useconds_t",
	"__suseconds_t",
	"__suseconds64_t",
	"__daddr_t",
	"__key_t",
	"__clockid_t",
	"__timer_t",
	"__blksize_t",
	"__blkcnt_t",
	"__blkcnt64_t",
	"__fsblkcnt_t",
	"__fsblkcnt64_t",
	"__fsfilcnt_t",
	"__fsfilcnt64_t",
	"__fsword_t",
	"__ssize_t",
	"__syscall_slong_t",
	"__syscall_ulong_t",
	"__loff_t",
	"__caddr_t",
	"__intptr_t",
	"__socklen_t",
	"__sig_atomic_t",
	"int_least8_t",
	"int_least16_t",
	"int_least32_t",
	"int_least64_t",
	"uint_least8_t",
	"uint_least16_t",
	"uint_least32_t",
	"uint_least64_t",
	"int_fast8_t",
	"int_fast16_t",
	"int_fast32_t",
	"int_fast64_t",
	"uint_fast8_t",
	"uint_fast16_t",
	"uint_fast32_t",
	"uint_fast64_t",
	"intmax_t",
	"uintmax_t",
	"__gwchar_t",
	"imaxdiv_t",
	"imaxabs",
	"imaxdiv",
	"strtoimax",
	"strtoumax",
	"wcstoimax",
	"wcstoumax",
	"max_align_t",
	"wchar_t",
}
