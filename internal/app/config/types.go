package config

type (
	InternalConfig struct {
		App     App
		JWT     JWT
		Session Session
		Booking Booking
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		StorageDriver              string
		DemoWalletAddress          string
		AllowedOrigins             []string
		CookieSecure               bool
		MaxRequests                int
		AuthRequestsPerSecond      int
		AuthRequestsBurst          int
		ShutdownTimeout            int
		RequestTimeoutInSecond     int
		RequestBodyLimitInMegabyte int64
		AvatarMaxUploadSizeInMB    int64
		RabbitMQEventQueue         string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Session struct {
		NonceTTLInMinute int
	}

	Booking struct {
		SubmitLockTTLInMinute int
	}
)

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Enabled       bool
		Port          string
		Host          string
		Username      string
		Password      string
		BucketName    string
		PublicBaseURL string
		UseSSL        bool
	}
)
